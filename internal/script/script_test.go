package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/internal/script"
	"github.com/katalvlaran/linkcut/lct"
)

const chain = `# path 0-1-2-3, then split it
n 4
link 0 1
link 1 2
link 2 3
connected 0 3
cut 1 2
connected 0 3   # separated now
connected 0 1
edge 3 2
root 3
makeroot 3
root 2
`

// TestParse covers comments, blank lines and operand decoding.
func TestParse(t *testing.T) {
	n, ops, err := script.Parse(strings.NewReader(chain))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, ops, 11)
	assert.Equal(t, script.Op{Kind: script.Link, U: 0, V: 1, Line: 3}, ops[0])
	assert.Equal(t, script.Op{Kind: script.FindRoot, U: 3, Line: 11}, ops[8])
	assert.Equal(t, "makeroot", ops[9].Kind.String())
}

// TestParse_Errors lists the rejected inputs.
func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"empty":           {"", script.ErrMissingSize},
		"only comments":   {"# nothing\n\n", script.ErrMissingSize},
		"op before size":  {"link 0 1\nn 2\n", script.ErrMissingSize},
		"size twice":      {"n 2\nn 3\n", script.ErrSyntax},
		"negative size":   {"n -1\n", script.ErrSyntax},
		"unknown keyword": {"n 2\njoin 0 1\n", script.ErrSyntax},
		"wrong arity":     {"n 2\nlink 0\n", script.ErrSyntax},
		"not a number":    {"n 2\ncut 0 x\n", script.ErrSyntax},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := script.Parse(strings.NewReader(c.src))
			require.ErrorIs(t, err, c.want)
		})
	}
}

// TestRun executes the chain script on both forest flavors.
func TestRun(t *testing.T) {
	n, ops, err := script.Parse(strings.NewReader(chain))
	require.NoError(t, err)

	plain, err := lct.New(n)
	require.NoError(t, err)
	synced, err := lct.NewSync(n)
	require.NoError(t, err)

	want := "true\nfalse\ntrue\ntrue\n2\n3\n"
	for name, f := range map[string]script.Forest{"forest": plain, "sync": synced} {
		var out bytes.Buffer
		require.NoError(t, script.Run(f, ops, &out), name)
		assert.Equal(t, want, out.String(), name)
	}
}

// TestRun_StopsAtFailure reports the failing line and wraps the forest error.
func TestRun_StopsAtFailure(t *testing.T) {
	n, ops, err := script.Parse(strings.NewReader("n 3\nlink 0 1\nlink 1 0\nconnected 0 1\n"))
	require.NoError(t, err)
	f, err := lct.New(n)
	require.NoError(t, err)

	var out bytes.Buffer
	err = script.Run(f, ops, &out)
	require.ErrorIs(t, err, lct.ErrAlreadyConnected)
	assert.Contains(t, err.Error(), "line 3 (link)")
	assert.Empty(t, out.String())
}

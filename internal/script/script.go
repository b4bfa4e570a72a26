// Package script parses and runs line-oriented link-cut scripts.
//
// Format, one directive per line, '#' starts a comment:
//
//	n 5            forest size, must come before any operation
//	link 0 1
//	cut 0 1
//	makeroot 2
//	connected 0 1  prints true/false
//	edge 0 1       prints true/false (current tree edge?)
//	root 3         prints the root of 3's tree
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrSyntax indicates a malformed line.
	ErrSyntax = errors.New("script: syntax error")

	// ErrMissingSize indicates an operation before the "n" directive, or no directive at all.
	ErrMissingSize = errors.New("script: forest size not declared")
)

// Kind identifies a script operation.
type Kind int

const (
	Link Kind = iota
	Cut
	MakeRoot
	Connected
	HasEdge
	FindRoot
)

// keywords maps directive names to kinds and their operand count.
var keywords = map[string]struct {
	kind  Kind
	arity int
}{
	"link":      {Link, 2},
	"cut":       {Cut, 2},
	"makeroot":  {MakeRoot, 1},
	"connected": {Connected, 2},
	"edge":      {HasEdge, 2},
	"root":      {FindRoot, 1},
}

// String returns the directive name of k.
func (k Kind) String() string {
	for name, kw := range keywords {
		if kw.kind == k {
			return name
		}
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Op is one parsed operation. V is unused for single-operand kinds.
type Op struct {
	Kind Kind
	U, V int
	Line int
}

// Forest is the subset of the lct API a script needs. Both *lct.Forest and
// *lct.SyncForest satisfy it.
type Forest interface {
	Link(u, v int) error
	Cut(u, v int) error
	MakeRoot(u int) error
	Connected(u, v int) (bool, error)
	HasEdge(u, v int) (bool, error)
	FindRoot(u int) (int, error)
}

// Parse reads a script and returns the declared forest size and the operations.
// Vertex bounds are not checked here; the forest reports them when run.
func Parse(r io.Reader) (int, []Op, error) {
	var (
		n    = -1
		ops  []Op
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		args, err := atoiAll(fields[1:])
		if err != nil {
			return 0, nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
		}

		if fields[0] == "n" {
			if n >= 0 || len(args) != 1 || args[0] < 0 {
				return 0, nil, fmt.Errorf("%w: line %d: size must be declared once as \"n <count>\"", ErrSyntax, line)
			}
			n = args[0]
			continue
		}

		kw, ok := keywords[strings.ToLower(fields[0])]
		if !ok {
			return 0, nil, fmt.Errorf("%w: line %d: unknown directive %q", ErrSyntax, line, fields[0])
		}
		if len(args) != kw.arity {
			return 0, nil, fmt.Errorf("%w: line %d: %s takes %d operand(s), got %d", ErrSyntax, line, fields[0], kw.arity, len(args))
		}
		if n < 0 {
			return 0, nil, fmt.Errorf("%w: line %d", ErrMissingSize, line)
		}

		op := Op{Kind: kw.kind, U: args[0], Line: line}
		if kw.arity == 2 {
			op.V = args[1]
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	if n < 0 {
		return 0, nil, ErrMissingSize
	}

	return n, ops, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Run executes ops against f, writing one line per query to w.
// It stops at the first failing operation and reports its line.
func Run(f Forest, ops []Op, w io.Writer) error {
	for _, op := range ops {
		var (
			out string
			err error
		)
		switch op.Kind {
		case Link:
			err = f.Link(op.U, op.V)
		case Cut:
			err = f.Cut(op.U, op.V)
		case MakeRoot:
			err = f.MakeRoot(op.U)
		case Connected:
			var ok bool
			ok, err = f.Connected(op.U, op.V)
			out = strconv.FormatBool(ok)
		case HasEdge:
			var ok bool
			ok, err = f.HasEdge(op.U, op.V)
			out = strconv.FormatBool(ok)
		case FindRoot:
			var r int
			r, err = f.FindRoot(op.U)
			out = strconv.Itoa(r)
		default:
			err = fmt.Errorf("%w: unknown op kind %d", ErrSyntax, op.Kind)
		}
		if err != nil {
			return fmt.Errorf("line %d (%s): %w", op.Line, op.Kind, err)
		}
		if out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}

	return nil
}

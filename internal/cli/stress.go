package cli

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linkcut/dsu"
	"github.com/katalvlaran/linkcut/lct"
)

// ErrMismatch is returned when the forest disagrees with the union-find reference.
var ErrMismatch = errors.New("stress: forest disagrees with reference")

func newStressCmd() *cobra.Command {
	var v *viper.Viper
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Cross-check random link/cut sequences against a rollback union-find",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := stressConfig{
				N:         v.GetInt("n"),
				Ops:       v.GetInt("ops"),
				Seed:      v.GetInt64("seed"),
				Unchecked: v.GetBool("unchecked"),
			}
			rep, err := stress(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: n=%d ops=%d seed=%d links=%d cuts=%d queries=%d\n",
				cfg.N, cfg.Ops, cfg.Seed, rep.Links, rep.Cuts, rep.Queries)

			return nil
		},
	}
	cmd.Flags().Int("n", 20, "number of vertices")
	cmd.Flags().Int("ops", 10000, "number of random operations")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Bool("unchecked", false, "run the forest without precondition checks")
	v = bindFlags(cmd)

	return cmd
}

type stressConfig struct {
	N, Ops    int
	Seed      int64
	Unchecked bool
}

type stressReport struct {
	Links, Cuts, Queries int
}

// reference tracks the live edges in a rollback union-find. Removing edge i
// rolls back to the mark taken before it and replays the later edges.
type reference struct {
	d     *dsu.DSU
	edges [][2]int
	marks []int
}

func (r *reference) link(u, v int) {
	r.marks = append(r.marks, r.d.Snapshot())
	r.d.Union(u, v)
	r.edges = append(r.edges, [2]int{u, v})
}

func (r *reference) cut(i int) error {
	rest := append([][2]int(nil), r.edges[i+1:]...)
	if err := r.d.Rollback(r.marks[i]); err != nil {
		return err
	}
	r.edges, r.marks = r.edges[:i], r.marks[:i]
	for _, e := range rest {
		r.link(e[0], e[1])
	}

	return nil
}

// stress runs cfg.Ops random valid operations and compares every vertex pair
// after each of them.
func stress(cfg stressConfig) (stressReport, error) {
	var rep stressReport
	if cfg.N < 1 || cfg.Ops < 0 {
		return rep, fmt.Errorf("stress: need n >= 1 and ops >= 0, got n=%d ops=%d", cfg.N, cfg.Ops)
	}

	var opts []lct.Option
	if cfg.Unchecked {
		opts = append(opts, lct.WithUnchecked())
	}
	f, err := lct.New(cfg.N, opts...)
	if err != nil {
		return rep, err
	}
	d, err := dsu.New(cfg.N)
	if err != nil {
		return rep, err
	}
	ref := &reference{d: d}
	rng := rand.New(rand.NewSource(cfg.Seed))

	for step := 0; step < cfg.Ops; step++ {
		u, v := rng.Intn(cfg.N), rng.Intn(cfg.N)
		switch {
		case u != v && !ref.d.Connected(u, v) && rng.Intn(2) == 0:
			if err := f.Link(u, v); err != nil {
				return rep, fmt.Errorf("step %d: link %d-%d: %w", step, u, v, err)
			}
			ref.link(u, v)
			rep.Links++
		case len(ref.edges) > 0 && rng.Intn(3) == 0:
			i := rng.Intn(len(ref.edges))
			e := ref.edges[i]
			if err := f.Cut(e[0], e[1]); err != nil {
				return rep, fmt.Errorf("step %d: cut %d-%d: %w", step, e[0], e[1], err)
			}
			if err := ref.cut(i); err != nil {
				return rep, err
			}
			rep.Cuts++
		default:
			if err := f.MakeRoot(u); err != nil {
				return rep, fmt.Errorf("step %d: makeroot %d: %w", step, u, err)
			}
		}

		if err := f.Validate(); err != nil {
			return rep, fmt.Errorf("step %d: %w", step, err)
		}
		for a := 0; a < cfg.N; a++ {
			for b := a + 1; b < cfg.N; b++ {
				got, err := f.Connected(a, b)
				if err != nil {
					return rep, err
				}
				rep.Queries++
				if want := ref.d.Connected(a, b); got != want {
					return rep, fmt.Errorf("%w: step %d: connected(%d,%d) = %v, want %v", ErrMismatch, step, a, b, got, want)
				}
			}
		}
	}

	return rep, nil
}

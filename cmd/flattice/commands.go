package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/katalvlaran/flattice/export"
	"github.com/katalvlaran/flattice/lattice"
	"github.com/katalvlaran/flattice/search"
)

func newBallCmd(a *app) *cobra.Command {
	var (
		k   int
		bfs bool
	)
	cmd := &cobra.Command{
		Use:   "ball",
		Short: "Print the Hamming ball of radius k around the origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("k") {
				a.cfg.BallRadius = k
			}
			g, err := a.graph()
			if err != nil {
				return err
			}
			ballFn := g.HammingBall
			if bfs {
				ballFn = g.ReachableWithin
			}
			ball, err := ballFn(a.cfg.BallRadius)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "k=%d size=%d\n", a.cfg.BallRadius, ball.Len())
			fmt.Fprintln(out, joinVertices(ball.Sorted()))

			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 1, "ball radius, at most 2*radius+1")
	cmd.Flags().BoolVar(&bfs, "bfs", false, "use breadth-first search instead of the min-plus matrix power")

	return cmd
}

func newNeighborhoodCmd(a *app) *cobra.Command {
	var (
		open     bool
		vertices []string
	)
	cmd := &cobra.Command{
		Use:   "neighborhood [x,y ...] [--vertex x,y ...]",
		Short: "Print the closed (or open) out-neighborhood of a vertex set",
		Example: `  flattice neighborhood 0,0 1,0
  flattice neighborhood --vertex -1,0 --vertex 0,0
  flattice neighborhood -- -1,0 0,-1`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args)+len(vertices) == 0 {
				return fmt.Errorf("requires at least one vertex: %w", lattice.ErrBadVertex)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := make([]lattice.Vertex, 0, len(vertices)+len(args))
			for _, s := range append(append([]string(nil), vertices...), args...) {
				v, err := lattice.ParseVertex(s)
				if err != nil {
					return err
				}
				vs = append(vs, v)
			}
			g, err := a.graph()
			if err != nil {
				return err
			}
			for _, v := range vs {
				if !g.IsValid(v) {
					a.log.Warn().Stringer("vertex", v).Msg("vertex outside radius; its successors may be incomplete")
				}
			}

			kind, set := "closed", g.ClosedOutNeighborhood(vs)
			if open {
				kind, set = "open", g.OpenOutNeighborhood(vs)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s size=%d\n", kind, set.Len())
			fmt.Fprintln(out, joinVertices(set.Sorted()))

			return nil
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "exclude the input vertices")
	cmd.Flags().StringArrayVarP(&vertices, "vertex", "v", nil, "vertex x,y; repeatable, accepts negative coordinates")

	return cmd
}

func newDistancesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distances",
		Short: "Print the hop distance from the origin to every reachable vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			dist, err := g.HopDistances()
			if err != nil {
				return err
			}
			vs := make([]lattice.Vertex, 0, len(dist))
			for v := range dist {
				vs = append(vs, v)
			}
			sort.Slice(vs, func(i, j int) bool {
				if dist[vs[i]] != dist[vs[j]] {
					return dist[vs[i]] < dist[vs[j]]
				}
				return vs[i].Less(vs[j])
			})

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "vertex\thops")
			for _, v := range vs {
				fmt.Fprintf(tw, "%v\t%d\n", v, dist[v])
			}

			return tw.Flush()
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		maxSubset, workers int
		asJSON             bool
		output             string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find minimum closed out-neighborhoods per subset size and test the ball conjecture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.Search
			if cmd.Flags().Changed("max-subset") {
				opts.MaxSubset = maxSubset
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			g, err := a.graph()
			if err != nil {
				return err
			}
			// Workers default to GOMAXPROCS; match it to the container CPU quota.
			logf := func(format string, args ...any) { a.log.Debug().Msgf(format, args...) }
			if undo, err := maxprocs.Set(maxprocs.Logger(logf)); err == nil {
				defer undo()
			}

			ctx := a.log.WithContext(cmd.Context())
			res, err := search.MinimumClosedNeighborhoods(ctx, g, opts)
			if err != nil {
				return err
			}
			rep, err := search.CheckBallConjecture(g, res)
			if err != nil {
				return err
			}
			a.log.Info().Bool("holds", rep.Holds).Ints("checked", rep.Checked).Msg("ball conjecture checked")

			w, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if asJSON {
				err = export.WriteResultsJSON(w, g.Radius(), res, &rep)
			} else {
				err = writeSearchText(w, res, rep)
			}
			if cerr := w.Close(); err == nil {
				err = cerr
			}

			return err
		},
	}
	f := cmd.Flags()
	f.IntVar(&maxSubset, "max-subset", 0, "largest subset size searched (0 = all valid vertices)")
	f.IntVar(&workers, "workers", 0, "concurrent subset sizes (0 = GOMAXPROCS)")
	f.BoolVar(&asJSON, "json", false, "write results as JSON")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func writeSearchText(w io.Writer, res []search.Result, rep search.ConjectureReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "k\tclosed\tsubset")
	for _, r := range res {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", r.K, r.ClosedSize, joinVertices(r.Subset))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "ball conjecture holds: %t\n", rep.Holds)
	if ce := rep.Counterexample; ce != nil {
		fmt.Fprintf(w, "counterexample at ball radius %d\n", ce.BallRadius)
		fmt.Fprintf(w, "  ball (%d): %s\n", len(ce.Ball), joinVertices(ce.Ball))
		fmt.Fprintf(w, "  ball closed (%d): %s\n", len(ce.BallClosed), joinVertices(ce.BallClosed))
		fmt.Fprintf(w, "  subset: %s\n", joinVertices(ce.Subset))
		fmt.Fprintf(w, "  subset closed (%d): %s\n", len(ce.SubsetClosed), joinVertices(ce.SubsetClosed))
	}
	_, err := fmt.Fprintf(w, "skipped ball radii: %v\n", rep.Skipped)

	return err
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format, output string
		ball           int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the lattice as JSON or Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ec := a.cfg.Export
			if cmd.Flags().Changed("format") {
				f, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				ec.Format = f
			}
			if cmd.Flags().Changed("output") {
				ec.Output = output
			}
			g, err := a.graph()
			if err != nil {
				return err
			}

			var highlight lattice.VertexSet
			if cmd.Flags().Changed("ball") {
				if highlight, err = g.HammingBall(ball); err != nil {
					return err
				}
			}

			w, err := openOutput(cmd, ec.Output)
			if err != nil {
				return err
			}
			err = export.WriteGraph(w, g, ec.Format, highlight)
			if cerr := w.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			a.log.Debug().Str("format", string(ec.Format)).Str("output", ec.Output).Msg("lattice exported")

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&format, "format", "f", "json", "json or dot")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	f.IntVar(&ball, "ball", 0, "highlight the Hamming ball of this radius (dot only)")

	return cmd
}

func joinVertices(vs []lattice.Vertex) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}

	return strings.Join(parts, " ")
}

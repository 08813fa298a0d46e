package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/hupe1980/graphgeo/layout"
	"github.com/spf13/cobra"
)

func newStatsCmd(f *rootFlags) *cobra.Command {
	var pairwise bool

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print graph, index and crossing statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := f.load(args[0])
			if err != nil {
				return err
			}

			l := fx.layout
			st := l.Stats()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "nodes\t%d\n", st.GraphNodes)
			fmt.Fprintf(w, "edges\t%d\n", st.GraphEdges)
			fmt.Fprintf(w, "indexed nodes\t%d\n", st.IndexedNodes)
			fmt.Fprintf(w, "indexed edges\t%d\n", st.IndexedEdges)
			fmt.Fprintf(w, "intersecting edges\t%d\n", l.TotalIntersectingEdges())
			if pairwise {
				fmt.Fprintf(w, "crossing pairs\t%d\n", l.TotalPairwiseIntersections())
			}
			fmt.Fprintf(w, "charge energy\t%g\n", layout.ChargeEnergy(l))

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&pairwise, "pairwise", false, "Also count crossing pairs by comparing every pair of edges")

	return cmd
}

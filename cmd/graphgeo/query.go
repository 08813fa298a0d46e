package main

import (
	"errors"
	"fmt"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/spf13/cobra"
)

func newQueryCmd(f *rootFlags) *cobra.Command {
	var (
		box  []float64
		size float64
	)

	cmd := &cobra.Command{
		Use:   "query FILE",
		Short: "List the nodes and edges inside a region",
		Long: `Lists the nodes located in a region and the edges whose bounding box
intersects it. The region is either --box minX,minY,maxX,maxY or a square of
side --size centered on the origin.`,
		Example: `  graphgeo query graph.yaml --box -1,-1,1,1
  graphgeo query graph.json.zst --size 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var env geom.Envelope
			switch {
			case len(box) == 4:
				env = geom.NewEnvelope(box[0], box[1], box[2], box[3])
			case len(box) != 0:
				return errors.New("--box needs four values: minX,minY,maxX,maxY")
			case size > 0:
				env = geom.CenteredSquare(size)
			default:
				return errors.New("either --box or --size is required")
			}

			fx, err := f.load(args[0])
			if err != nil {
				return err
			}

			r := fx.layout.QueryRegion(env)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "region %s: %d nodes, %d edges\n", env, len(r.Nodes), len(r.Edges))
			for _, n := range r.Nodes {
				name, _ := fx.names.Name(n.ID)
				fmt.Fprintf(out, "node %s (%g, %g)\n", name, n.Point.X, n.Point.Y)
			}
			for _, e := range r.Edges {
				a, b, _ := fx.graph.Endpoints(e.ID)
				from, _ := fx.names.Name(a)
				to, _ := fx.names.Name(b)
				fmt.Fprintf(out, "edge %s-%s crossings=%d\n", from, to, fx.layout.IntersectionsForEdge(e.ID))
			}

			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&box, "box", nil, "Region as minX,minY,maxX,maxY")
	cmd.Flags().Float64Var(&size, "size", 0, "Side of a square region centered on the origin")

	return cmd
}

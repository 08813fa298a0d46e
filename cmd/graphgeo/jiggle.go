package main

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/graphgeo/codec"
	"github.com/hupe1980/graphgeo/graph"
	"github.com/hupe1980/graphgeo/layout"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func newJiggleCmd(f *rootFlags) *cobra.Command {
	var (
		amount float64
		steps  int
		fps    float64
		seed   int64
		out    string
	)

	cmd := &cobra.Command{
		Use:   "jiggle FILE",
		Short: "Randomly drift every node and report crossings after each step",
		Long: `Moves every node by a random drift of up to amount/2 per axis, a number
of times, and prints the number of intersecting edges after each step.
Unpositioned nodes are placed near the origin. With --fps the steps are
paced like animation frames.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := f.load(args[0])
			if err != nil {
				return err
			}

			limit := rate.Inf
			if fps > 0 {
				limit = rate.Limit(fps)
			}
			limiter := rate.NewLimiter(limit, 1)
			rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: layout noise, not security

			ctx := cmd.Context()
			for step := 1; step <= steps; step++ {
				if err := limiter.Wait(ctx); err != nil {
					return err
				}
				if err := layout.Jiggle(fx.layout, amount, rng); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "step %d: %d intersecting edges\n", step, fx.layout.TotalIntersectingEdges())
			}

			if err := fx.layout.Validate(); err != nil {
				return err
			}

			if out != "" {
				return codec.WriteFile(out, graph.ToData(fx.graph, fx.names))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 1, "Maximum drift per axis (full width)")
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of jiggle steps")
	cmd.Flags().Float64Var(&fps, "fps", 0, "Steps per second, 0 for no pacing")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the final layout to this fixture file")

	return cmd
}

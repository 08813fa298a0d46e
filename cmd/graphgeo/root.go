package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/graphgeo"
	"github.com/hupe1980/graphgeo/codec"
	"github.com/hupe1980/graphgeo/graph"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	gridPower int
	workers   int
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "graphgeo",
		Short: "Query graph layouts through a live geometry index",
		Long: `graphgeo loads a node/edge fixture, indexes node positions and edge
segments in an R-tree and answers region and edge crossing queries.

Fixtures are JSON or YAML, optionally compressed (.zst, .lz4).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
	pf.IntVar(&f.gridPower, "grid-power", 0, "Quantization grid power used to detect identical edges")
	pf.IntVar(&f.workers, "workers", 1, "Goroutines used to count intersecting edges")

	cmd.AddCommand(newStatsCmd(f))
	cmd.AddCommand(newQueryCmd(f))
	cmd.AddCommand(newJiggleCmd(f))

	return cmd
}

func (f *rootFlags) logger() (*graphgeo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch f.logFormat {
	case "text":
		return graphgeo.NewLogger(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return graphgeo.NewLogger(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", f.logFormat)
	}
}

// fixture is a loaded graph file.
type fixture struct {
	layout *graphgeo.Layout
	graph  *graph.Memory
	names  *graph.Names
}

func (f *rootFlags) load(path string) (*fixture, error) {
	logger, err := f.logger()
	if err != nil {
		return nil, err
	}

	var data graph.Data
	if err := codec.ReadFile(path, &data); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	g, names, err := graph.FromData(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	l := graphgeo.New(g,
		graphgeo.WithLogger(logger),
		graphgeo.WithGridPower(f.gridPower),
		graphgeo.WithWorkers(f.workers),
	)

	return &fixture{layout: l, graph: g, names: names}, nil
}

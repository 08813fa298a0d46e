// Command graphgeo inspects graph fixtures through a live geometry index.
//
// Fixtures are node/edge lists in JSON or YAML, optionally compressed with
// zstd or lz4 (see package codec):
//
//	nodes:
//	  - {id: a, x: 0, y: 0}
//	  - {id: b, x: 10, y: 10}
//	edges:
//	  - {from: a, to: b}
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

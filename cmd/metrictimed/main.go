// Package main is the entrypoint for the metrictimed daemon.
// metrictimed emits the current time in a configurable base on a fixed
// cadence and serves a health endpoint reporting tick progress.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reuschj/metric-time/internal/server"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return server.Run(ctx, server.Params{Name: "metrictimed"}, nil)
}

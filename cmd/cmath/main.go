// Command cmath evaluates complex elementary functions from the command line.
//
// Usage:
//
//	cmath eval sqrt -4 0
//	cmath eval powInt 0 1 5
//	cmath run jobs/branch-cuts.yaml --out report.toml
//
// Flags:
//
//	--series-max  cap on series terms before non-convergence (env SERIES_MAX)
//	--log-level   debug, info, warn or error
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

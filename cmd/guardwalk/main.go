// Command guardwalk simulates a guard patrolling a text map and counts the
// cells where one extra obstruction would trap the guard in a loop.
//
// Usage:
//
//	guardwalk solve input.txt
//	guardwalk solve --workers 8 --metrics-file run.prom < input.txt
//	guardwalk render --color input.txt
//
// Map symbols: '#' obstruction, '^' guard facing up, anything else floor.
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
		stop()
		fmt.Fprintf(os.Stderr, "guardwalk: %v\n", err)
		os.Exit(1)
	}
}

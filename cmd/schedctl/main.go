// Command schedctl runs the bulk scheduling operations from a shell. It
// reads the same configuration as the server.
//
// Usage:
//
//	schedctl migrate up
//	schedctl reschedule --deck=12 --recent
//	schedctl postpone --count=200
//	schedctl ease export 12 > ease.json
//
// Ctrl-C stops a running operation at its next checkpoint; the cards
// processed so far stay written and can be undone.
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
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Validoc documents the validation rules of the bundled sample validators.
//
// Usage:
//
//	# List the registered validators
//	validoc list
//
//	# Print the rules of one validator, nested validators included
//	validoc doc CustomerValidator --deep --format markdown
//
//	# Print German messages
//	validoc doc CustomerValidator --lang de
//
//	# Serve the documentation over HTTP
//	validoc serve --addr :8080
//
// Settings are read from VALIDOC_* environment variables (and a .env file)
// and overridden by flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/validoc/internal/sample"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(sample.Registry).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

// Run calls run with development logger and context that is canceled on
// interrupt. On error, it is printed with details and process exits with
// code 2.
func Run(run func(ctx context.Context, lg *zap.Logger) error) {
	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, lg)
	cancel()
	_ = lg.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"radialmenu/cmd/radialmenu/cli"
)

var version = "dev"

// Entry point for the application
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		cli.PrintError(err.Error())
		stop()
		os.Exit(1)
	}
}

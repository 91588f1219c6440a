// Package main is the entry point for the cbe CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/foundryhq/cbe/cmd/cbe/commands"
	"github.com/foundryhq/cbe/internal/app"
	_ "github.com/foundryhq/cbe/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(a)
	if err := cli.Execute(ctx); err != nil {
		a.Log.Error(err)
		return 1
	}
	return 0
}

// Package main is the entry point for heatsweep.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/heatsweep/cmd/heatsweep/commands"
	"go.trai.ch/heatsweep/internal/app"
	_ "go.trai.ch/heatsweep/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := app.NewApp(ctx)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	if out, ok := components.Logger.(interface{ SetOutput(io.Writer) }); ok {
		out.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

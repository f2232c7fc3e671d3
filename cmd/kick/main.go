// Package main is the entry point for the kick bootstrap.
package main

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/kick/cmd/kick/commands"
	"go.trai.ch/kick/internal/app"
	_ "go.trai.ch/kick/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// Signals are not intercepted: an interrupted rebuild leaves its files as they are.
	ctx := context.Background()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

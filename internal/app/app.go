// Package app implements the application layer for kick.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/kick/internal/engine/bootstrap"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.IdentityResolver
	orchestrator *bootstrap.Orchestrator
	executor     ports.Executor
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.IdentityResolver,
	orchestrator *bootstrap.Orchestrator,
	executor ports.Executor,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		orchestrator: orchestrator,
		executor:     executor,
		logger:       logger,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput sets the streams handed to child processes.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// RunOptions configures a run.
type RunOptions struct {
	// ConfigPath is the kick.yaml to read. A missing file means defaults.
	ConfigPath string
	// Args are the command line arguments to hand to a rebuilt binary.
	Args []string
}

// Run performs the self-rebuild check and then builds the project. When the
// binary was rebuilt the new version has already done the build, so Run
// returns without doing it again.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	settings, id, err := a.prepare(opts)
	if err != nil {
		return err
	}

	outcome, err := a.orchestrator.Run(ctx, bootstrap.Request{
		Identity:  id,
		Toolchain: settings.Toolchain,
		Args:      opts.Args,
		Stdout:    a.stdout,
		Stderr:    a.stderr,
	})
	if err != nil {
		return err
	}
	if outcome == domain.OutcomeRebuilt {
		return nil
	}

	a.logger.Info("Building project")
	return a.executor.Execute(ctx, settings.Build, a.stdout, a.stderr)
}

// Check reports whether the running binary is stale without changing anything.
func (a *App) Check(_ context.Context, opts RunOptions) (domain.Staleness, error) {
	_, id, err := a.prepare(opts)
	if err != nil {
		return domain.Staleness{}, err
	}
	return a.orchestrator.Check(id)
}

// prepare loads the settings and resolves the executable identity once.
func (a *App) prepare(opts RunOptions) (*domain.Settings, domain.Identity, error) {
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, domain.Identity{}, zerr.Wrap(err, "failed to load configuration")
	}

	name, err := a.resolver.Resolve()
	if err != nil {
		return nil, domain.Identity{}, err
	}

	return settings, domain.NewIdentity(".", name, settings.SourceSuffix), nil
}

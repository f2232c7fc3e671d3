// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	stdin io.Reader
}

// NewExecutor creates a new Executor whose children inherit os.Stdin.
func NewExecutor() *Executor {
	return &Executor{stdin: os.Stdin}
}

// Execute runs cmd and waits for it to exit. When stdout and stderr are the
// process's own *os.File streams the child inherits them directly.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if cmd.Empty() {
		return errors.Join(domain.ErrCommandStart, zerr.New("empty command"))
	}

	c := exec.CommandContext(ctx, cmd.Program(), cmd.Args()...) //nolint:gosec // user provided command
	c.Stdin = e.stdin
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Start(); err != nil {
		return errors.Join(domain.ErrCommandStart,
			zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.String()))
	}

	if err := c.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return errors.Join(domain.ErrCommandFailed,
			zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", cmd.String()), "exit_code", exitCode))
	}

	return nil
}

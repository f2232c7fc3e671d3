// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/kick/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd and blocks until it terminates. The child writes to
	// stdout and stderr directly.
	//
	// Errors carry domain.ErrCommandStart when the program could not be
	// launched and domain.ErrCommandFailed when it exited unsuccessfully.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}

package ports

import (
	"context"

	"go.trai.ch/kick/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the stages of a bootstrap run.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Stages returns the stages recorded so far, in the order they started.
	Stages() []domain.StageRecord
	// Close flushes the recording.
	Close() error
}

// Vertex is a single recorded stage.
type Vertex interface {
	// Log writes a line to the vertex log.
	Log(msg string)
	// Complete marks the vertex finished; err is nil on success.
	Complete(err error)
}

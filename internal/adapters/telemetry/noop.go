// Package telemetry provides stage recording adapters.
package telemetry

import (
	"context"

	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx and a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noOpVertex{}
}

// Stages always returns nil.
func (t *NoOp) Stages() []domain.StageRecord { return nil }

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Log(string)     {}
func (noOpVertex) Complete(error) {}

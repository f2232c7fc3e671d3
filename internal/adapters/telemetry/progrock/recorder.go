// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock recording kept in a Journal.
type Recorder struct {
	journal *Journal
	rec     *progrock.Recorder
}

// New creates a new Recorder with an empty journal.
func New() *Recorder {
	return NewRecorder(NewJournal())
}

// NewRecorder creates a new Recorder writing to the given journal.
func NewRecorder(journal *Journal) *Recorder {
	return &Recorder{
		journal: journal,
		rec:     progrock.NewRecorder(journal),
	}
}

// Record starts recording a new vertex. Stage names are unique within a
// bootstrap run, so the digest is derived from the name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Stages returns the stages recorded in the journal.
func (r *Recorder) Stages() []domain.StageRecord {
	return r.journal.Stages()
}

// Close closes the journal.
func (r *Recorder) Close() error {
	return r.journal.Close()
}

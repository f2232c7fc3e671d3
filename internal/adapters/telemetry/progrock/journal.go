package progrock

import (
	"slices"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/kick/internal/core/domain"
)

var _ progrock.Writer = (*Journal)(nil)

// Journal is a progrock.Writer that keeps the recorded stages in memory so
// they can be read back once a run is over.
type Journal struct {
	mu     sync.Mutex
	order  []string
	stages map[string]*domain.StageRecord
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{stages: make(map[string]*domain.StageRecord)}
}

// WriteStatus folds a status update into the journal.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		rec := j.stage(v.Id)
		if rec.Done && v.Completed == nil {
			// The stage was started again.
			*rec = domain.StageRecord{}
		}
		rec.Name = v.Name
		if v.Completed != nil {
			rec.Done = true
			if v.Error != nil {
				rec.Err = *v.Error
			}
		}
	}

	for _, l := range update.Logs {
		rec := j.stage(l.Vertex)
		rec.Lines = append(rec.Lines, splitLines(l.Data)...)
	}

	return nil
}

// Close does nothing; the journal stays readable.
func (j *Journal) Close() error {
	return nil
}

// Stages returns a copy of the recorded stages in the order they first appeared.
func (j *Journal) Stages() []domain.StageRecord {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]domain.StageRecord, 0, len(j.order))
	for _, id := range j.order {
		rec := *j.stages[id]
		rec.Lines = slices.Clone(rec.Lines)
		out = append(out, rec)
	}
	return out
}

func (j *Journal) stage(id string) *domain.StageRecord {
	rec, ok := j.stages[id]
	if !ok {
		rec = &domain.StageRecord{}
		j.stages[id] = rec
		j.order = append(j.order, id)
	}
	return rec
}

func splitLines(data []byte) []string {
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

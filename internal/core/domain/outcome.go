package domain

import "fmt"

// Outcome is the result of a bootstrap run.
type Outcome int

const (
	// OutcomeFresh means the binary was up to date and the caller should continue.
	OutcomeFresh Outcome = iota
	// OutcomeRebuilt means the binary was rebuilt and the new version already ran.
	OutcomeRebuilt
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFresh:
		return "fresh"
	case OutcomeRebuilt:
		return "rebuilt"
	default:
		return "unknown"
	}
}

// Staleness is the result of comparing the binary and source timestamps.
type Staleness struct {
	BinaryModTime int64
	SourceModTime int64
}

// Stale reports whether the binary must be rebuilt. Equal timestamps count as
// stale.
func (s Staleness) Stale() bool {
	return s.BinaryModTime <= s.SourceModTime
}

func (s Staleness) String() string {
	return fmt.Sprintf("binary mtime %d, source mtime %d, stale=%t", s.BinaryModTime, s.SourceModTime, s.Stale())
}

package domain

// StageRecord is what was recorded for one stage of a bootstrap run.
type StageRecord struct {
	Name string
	// Lines are the log lines written while the stage ran.
	Lines []string
	// Err is the error message the stage completed with, empty on success.
	Err  string
	Done bool
}

// Failed reports whether the stage completed with an error.
func (r StageRecord) Failed() bool {
	return r.Done && r.Err != ""
}

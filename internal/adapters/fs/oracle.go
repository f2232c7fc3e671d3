// Package fs provides the filesystem adapters of the bootstrap.
package fs

import (
	"errors"
	"os"
	"time"

	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModTimeOracle = (*ModTimeOracle)(nil)

// ModTimeOracle implements ports.ModTimeOracle using os.Stat.
type ModTimeOracle struct{}

// NewModTimeOracle creates a new ModTimeOracle.
func NewModTimeOracle() *ModTimeOracle {
	return &ModTimeOracle{}
}

// ModTime returns the modification time of path in whole seconds since the
// Unix epoch. The value is read from disk on every call.
func (o *ModTimeOracle) ModTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Join(domain.ErrIo, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path))
	}

	mtime := info.ModTime()
	if mtime.Before(time.Unix(0, 0)) {
		return 0, errors.Join(domain.ErrTimeConversion,
			zerr.With(zerr.New("modification time before 1970-01-01"), "path", path))
	}
	return mtime.Unix(), nil
}

package fs

import (
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.trai.ch/kick/internal/core/domain"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IdentityResolver = (*IdentityResolver)(nil)

// IdentityResolver determines the file name of the running executable.
type IdentityResolver struct {
	executable func() (string, error)
}

// NewIdentityResolver creates an IdentityResolver backed by os.Executable.
func NewIdentityResolver() *IdentityResolver {
	return NewIdentityResolverFunc(os.Executable)
}

// NewIdentityResolverFunc creates an IdentityResolver that asks fn for the
// executable path.
func NewIdentityResolverFunc(fn func() (string, error)) *IdentityResolver {
	return &IdentityResolver{executable: fn}
}

// Resolve returns the file name (not the full path) of the executable.
func (r *IdentityResolver) Resolve() (string, error) {
	path, err := r.executable()
	if err != nil {
		return "", errors.Join(domain.ErrIo, zerr.Wrap(err, "failed to determine executable path"))
	}

	name := fileName(path)
	if name == "" {
		return "", errors.Join(domain.ErrInvalidExecutable,
			zerr.With(zerr.New("executable path has no file name"), "path", path))
	}
	if !utf8.ValidString(name) {
		return "", errors.Join(domain.ErrNonUTF8Filename,
			zerr.With(zerr.New("executable name is not valid utf-8"), "name", []byte(name)))
	}
	return name, nil
}

// fileName returns the last element of path, or "" when there is none.
func fileName(path string) string {
	if path == "" {
		return ""
	}
	switch base := filepath.Base(path); base {
	case ".", "..", string(filepath.Separator):
		return ""
	default:
		return base
	}
}

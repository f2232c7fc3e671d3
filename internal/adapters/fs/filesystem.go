package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kick/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Copy copies src to dst, keeping the file mode, and checks that both files
// hash to the same XXHash digest.
func (f *FileSystem) Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", src)
	}

	want, err := copyHashed(src, dst, info.Mode().Perm())
	if err != nil {
		return err
	}

	// Chmod again since the umask may have narrowed perm.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set copy mode"), "path", dst)
	}

	got, err := ComputeFileHash(dst)
	if err != nil {
		return err
	}
	if got != want {
		return zerr.With(zerr.With(zerr.New("copy does not match source"), "src", src), "dst", dst)
	}
	return nil
}

// copyHashed streams src into dst and returns the digest of the bytes read.
func copyHashed(src, dst string, perm os.FileMode) (uint64, error) {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open copy source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	// dst may be a read-only leftover of an earlier run; replace it instead of
	// opening it for writing.
	if err := os.Remove(dst); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return 0, zerr.With(zerr.Wrap(err, "failed to remove existing copy destination"), "path", dst)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to create copy destination"), "path", dst)
	}

	hasher := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, hasher), in); err != nil {
		_ = out.Close()
		return 0, zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to close copy destination"), "path", dst)
	}
	return hasher.Sum64(), nil
}

// Rename moves src to dst, replacing dst atomically when both are on the same
// filesystem.
func (f *FileSystem) Rename(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to rename file"), "src", src), "dst", dst)
	}
	return nil
}

// Remove deletes path. A missing path is not an error.
func (f *FileSystem) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

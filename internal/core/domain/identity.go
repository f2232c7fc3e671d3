// Package domain holds the core types of the kick bootstrap.
package domain

import (
	"path/filepath"
	"strings"
)

const (
	// BackupSuffix is appended to the binary name to form the backup path.
	BackupSuffix = ".old"
	// StagingSuffix is appended to the binary name to form the compiler output path.
	StagingSuffix = ".new"
)

// Identity describes the running bootstrap binary and the files derived from it.
// It is resolved once per run and passed down explicitly.
type Identity struct {
	// Dir is the directory all derived paths are relative to.
	Dir string
	// Name is the file name of the running binary.
	Name string
	// SourceSuffix is appended to Name to find the source file.
	SourceSuffix string
}

// NewIdentity creates an Identity rooted at dir. An empty dir means the
// current working directory.
func NewIdentity(dir, name, sourceSuffix string) Identity {
	if dir == "" {
		dir = "."
	}
	return Identity{Dir: dir, Name: name, SourceSuffix: sourceSuffix}
}

// SourceName returns the file name of the source the binary is built from.
func (i Identity) SourceName() string {
	return i.Name + i.SourceSuffix
}

// BinaryPath returns the path of the binary.
func (i Identity) BinaryPath() string {
	return filepath.Join(i.Dir, i.Name)
}

// SourcePath returns the path of the source file.
func (i Identity) SourcePath() string {
	return filepath.Join(i.Dir, i.SourceName())
}

// BackupPath returns the path of the transient backup copy.
func (i Identity) BackupPath() string {
	return filepath.Join(i.Dir, i.Name+BackupSuffix)
}

// StagingPath returns the path the compiler writes the new binary to before
// it is renamed over BinaryPath.
func (i Identity) StagingPath() string {
	return filepath.Join(i.Dir, i.Name+StagingSuffix)
}

// ExecPath returns BinaryPath in a form that is never looked up in PATH.
func (i Identity) ExecPath() string {
	p := i.BinaryPath()
	if filepath.IsAbs(p) || strings.ContainsRune(p, filepath.Separator) {
		return p
	}
	return "." + string(filepath.Separator) + p
}

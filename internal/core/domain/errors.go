package domain

import "go.trai.ch/zerr"

// The bootstrap reports every failure as one of the categories below.
// Adapters attach a category with errors.Join so callers can match it with
// errors.Is while the joined cause keeps the zerr metadata.
var (
	// ErrIo is returned when file metadata or path resolution fails.
	ErrIo = zerr.New("i/o failure")

	// ErrCommandStart is returned when an external process cannot be launched.
	ErrCommandStart = zerr.New("command could not be started")

	// ErrCommandFailed is returned when an external process exits with a failure status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrInvalidExecutable is returned when the running binary's path has no file name.
	ErrInvalidExecutable = zerr.New("executable path has no file name")

	// ErrNonUTF8Filename is returned when a resolved file name is not valid UTF-8.
	ErrNonUTF8Filename = zerr.New("file name is not valid utf-8")

	// ErrBackupOperation is returned when creating or removing the backup copy fails.
	ErrBackupOperation = zerr.New("backup operation failed")

	// ErrTimeConversion is returned when a modification time predates the Unix epoch.
	ErrTimeConversion = zerr.New("modification time predates the epoch")
)

// ErrInvalidConfig is returned when the configuration file fails validation.
var ErrInvalidConfig = zerr.New("invalid configuration")

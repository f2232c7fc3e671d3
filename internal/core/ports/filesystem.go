package ports

//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// ModTimeOracle resolves file modification times.
type ModTimeOracle interface {
	// ModTime returns the modification time of path in seconds since the
	// Unix epoch.
	ModTime(path string) (int64, error)
}

// IdentityResolver determines the file name of the running executable.
type IdentityResolver interface {
	Resolve() (string, error)
}

// FileSystem performs the file mutations of a rebuild.
type FileSystem interface {
	// Copy copies src to dst, overwriting dst, and verifies the copy.
	Copy(src, dst string) error
	// Rename atomically moves src to dst.
	Rename(src, dst string) error
	// Remove deletes path. Removing a missing path is not an error.
	Remove(path string) error
}

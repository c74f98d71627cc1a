package fsys

import (
	"context"
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystem is the minimal filesystem surface an access probe needs.
// Every method acquires its resources for the shortest possible duration;
// nothing is cached between calls.
type FileSystem interface {
	// Stat returns metadata for the path, or an error satisfying
	// errors.Is(err, fs.ErrNotExist) when the path does not exist.
	Stat(path string) (FileInfo, error)

	// OpenRead opens an existing file for reading. The caller must close it.
	OpenRead(path string) (io.ReadCloser, error)

	// OpenWrite opens an existing file for writing without truncating it.
	// The caller must close it.
	OpenWrite(path string) (io.WriteCloser, error)

	// ReadDirNames returns up to n entry names from the directory at path.
	// n <= 0 reads the whole directory. An empty directory yields an empty
	// slice, not an error.
	ReadDirNames(path string, n int) ([]string, error)

	// CreateNew creates a file that must not already exist and closes it
	// immediately.
	CreateNew(path string) error

	// Remove deletes the named file.
	Remove(path string) error
}

// Runner spawns external processes for the execute-permission probe.
type Runner interface {
	// LookPath resolves name to an executable path. An error means the
	// calling context cannot spawn the utility at all.
	LookPath(name string) (string, error)

	// Run executes the command, waits for it, and returns its exit code.
	// The returned error is non-nil only when the process could not be
	// started or waited on, not when it exits nonzero.
	Run(ctx context.Context, name string, args ...string) (int, error)
}

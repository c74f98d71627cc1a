package fsys

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// OSFileSystem implements FileSystem for the OS filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

func (p *OSFileSystem) OpenRead(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (p *OSFileSystem) OpenWrite(path string) (io.WriteCloser, error) {
	// O_WRONLY without O_TRUNC: probing writability must not destroy
	// pre-existing content.
	return os.OpenFile(path, os.O_WRONLY, 0)
}

func (p *OSFileSystem) ReadDirNames(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(n)
	if errors.Is(err, io.EOF) {
		// Empty directory: enumerable, just nothing in it.
		return nil, nil
	}
	return names, err
}

func (p *OSFileSystem) CreateNew(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}

func (p *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// OSRunner implements Runner on os/exec.
type OSRunner struct{}

// NewOSRunner creates a new OS process runner.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *OSRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	err := exec.CommandContext(ctx, name, args...).Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

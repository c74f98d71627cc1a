package fsys

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries.
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a single file or directory in the virtual tree.
type memoryEntry struct {
	mode    fs.FileMode
	content []byte
	modTime time.Time
}

// MemoryFileSystem implements FileSystem in memory for testing. Unlike the
// real filesystem it enforces only the owner permission bits, which is
// enough to simulate every denial the probes distinguish: read (0400) gates
// OpenRead and directory enumeration, write (0200) gates OpenWrite and
// entry creation/removal in the parent directory.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // clean forward-slash path -> entry
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{entries: make(map[string]*memoryEntry)}
}

// AddFile adds a file with the given content and permission bits.
// Missing parent directories are created with mode 0755.
func (m *MemoryFileSystem) AddFile(p, content string, mode fs.FileMode) {
	p = normalize(p)
	m.ensureParents(p)
	m.entries[p] = &memoryEntry{
		mode:    mode &^ fs.ModeDir,
		content: []byte(content),
		modTime: time.Now(),
	}
}

// AddDir adds a directory with the given permission bits.
// Missing parent directories are created with mode 0755.
func (m *MemoryFileSystem) AddDir(p string, mode fs.FileMode) {
	p = normalize(p)
	m.ensureParents(p)
	m.entries[p] = &memoryEntry{
		mode:    mode | fs.ModeDir,
		modTime: time.Now(),
	}
}

// Chmod replaces the permission bits of an existing entry.
func (m *MemoryFileSystem) Chmod(p string, mode fs.FileMode) {
	p = normalize(p)
	if e, ok := m.entries[p]; ok {
		e.mode = mode | (e.mode & fs.ModeDir)
	}
}

// Exists reports whether the path is present in the virtual tree.
func (m *MemoryFileSystem) Exists(p string) bool {
	_, ok := m.entries[normalize(p)]
	return ok
}

func (m *MemoryFileSystem) ensureParents(p string) {
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if _, ok := m.entries[dir]; !ok {
			m.entries[dir] = &memoryEntry{mode: 0o755 | fs.ModeDir, modTime: time.Now()}
		}
	}
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

func pathError(op, p string, err error) error {
	return &fs.PathError{Op: op, Path: p, Err: err}
}

func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	p = normalize(p)
	e, ok := m.entries[p]
	if !ok {
		return nil, pathError("stat", p, fs.ErrNotExist)
	}
	return &memoryFileInfo{
		name:    path.Base(p),
		size:    int64(len(e.content)),
		mode:    e.mode,
		modTime: e.modTime,
	}, nil
}

func (m *MemoryFileSystem) OpenRead(p string) (io.ReadCloser, error) {
	p = normalize(p)
	e, ok := m.entries[p]
	if !ok {
		return nil, pathError("open", p, fs.ErrNotExist)
	}
	if e.mode&0o400 == 0 {
		return nil, pathError("open", p, fs.ErrPermission)
	}
	return io.NopCloser(bytes.NewReader(e.content)), nil
}

func (m *MemoryFileSystem) OpenWrite(p string) (io.WriteCloser, error) {
	p = normalize(p)
	e, ok := m.entries[p]
	if !ok {
		return nil, pathError("open", p, fs.ErrNotExist)
	}
	if e.mode.IsDir() || e.mode&0o200 == 0 {
		return nil, pathError("open", p, fs.ErrPermission)
	}
	return nopWriteCloser{}, nil
}

func (m *MemoryFileSystem) ReadDirNames(p string, n int) ([]string, error) {
	p = normalize(p)
	e, ok := m.entries[p]
	if !ok {
		return nil, pathError("open", p, fs.ErrNotExist)
	}
	if !e.mode.IsDir() {
		return nil, pathError("readdirnames", p, fs.ErrInvalid)
	}
	if e.mode&0o400 == 0 {
		return nil, pathError("open", p, fs.ErrPermission)
	}

	var names []string
	prefix := p + "/"
	for candidate := range m.entries {
		if strings.HasPrefix(candidate, prefix) && !strings.Contains(candidate[len(prefix):], "/") {
			names = append(names, candidate[len(prefix):])
		}
	}
	sort.Strings(names)
	if n > 0 && len(names) > n {
		names = names[:n]
	}
	return names, nil
}

func (m *MemoryFileSystem) CreateNew(p string) error {
	p = normalize(p)
	if _, ok := m.entries[p]; ok {
		return pathError("open", p, fs.ErrExist)
	}
	parent, ok := m.entries[path.Dir(p)]
	if !ok {
		return pathError("open", p, fs.ErrNotExist)
	}
	if !parent.mode.IsDir() || parent.mode&0o200 == 0 {
		return pathError("open", p, fs.ErrPermission)
	}
	m.entries[p] = &memoryEntry{mode: 0o600, modTime: time.Now()}
	return nil
}

func (m *MemoryFileSystem) Remove(p string) error {
	p = normalize(p)
	if _, ok := m.entries[p]; !ok {
		return pathError("remove", p, fs.ErrNotExist)
	}
	if parent, ok := m.entries[path.Dir(p)]; ok && parent.mode&0o200 == 0 {
		return pathError("remove", p, fs.ErrPermission)
	}
	delete(m.entries, p)
	return nil
}

type nopWriteCloser struct{}

func (nopWriteCloser) Write(b []byte) (int, error) { return len(b), nil }
func (nopWriteCloser) Close() error                { return nil }

// FakeRunner implements Runner for testing the execute-permission probe.
type FakeRunner struct {
	// LookPathErr, when set, makes LookPath fail, simulating a context that
	// is not authorized to spawn subprocesses.
	LookPathErr error

	// ExitCodes maps a probed path to the exit code of the test utility.
	// Paths not present exit 1 (not executable).
	ExitCodes map[string]int

	// RunErr, when set, makes Run itself fail.
	RunErr error

	// Calls records every Run invocation as "name arg...".
	Calls []string
}

func (r *FakeRunner) LookPath(name string) (string, error) {
	if r.LookPathErr != nil {
		return "", r.LookPathErr
	}
	return "/usr/bin/" + name, nil
}

func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	r.Calls = append(r.Calls, strings.Join(append([]string{name}, args...), " "))
	if r.RunErr != nil {
		return -1, r.RunErr
	}
	if len(args) == 0 {
		return 1, nil
	}
	code, ok := r.ExitCodes[args[len(args)-1]]
	if !ok {
		return 1, nil
	}
	return code, nil
}

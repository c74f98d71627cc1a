package fsaccess

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"

	"github.com/vvka-141/fsaccess/internal/fsys"
	"github.com/vvka-141/fsaccess/internal/logging"
)

// probe is the concrete minimal-impact operation selected for a mode.
type probe int

const (
	probeNone probe = iota
	probeOpenRead
	probeOpenWrite
	probeListDir
	probeScratchEntry
	probeExecute
)

func (p probe) String() string {
	switch p {
	case probeNone:
		return "none"
	case probeOpenRead:
		return "open-read"
	case probeOpenWrite:
		return "open-write"
	case probeListDir:
		return "list-directory"
	case probeScratchEntry:
		return "scratch-entry"
	case probeExecute:
		return "execute-bit"
	}
	return "unknown"
}

// resolveProbe is the pure decision procedure mapping (target kind,
// requested mode) to the probe to perform. Modes outside the four defined
// constants deliberately fall through to no probe, matching ModeExists:
// an unrecognized mode succeeds once existence is confirmed.
func resolveProbe(mode AccessMode, isDir bool) probe {
	switch mode {
	case ModeRead:
		if isDir {
			return probeListDir
		}
		return probeOpenRead
	case ModeWrite:
		if isDir {
			return probeScratchEntry
		}
		return probeOpenWrite
	case ModeExecute:
		if isDir {
			// Directory traversal permission is approximated by
			// enumerability, same as the read probe.
			return probeListDir
		}
		return probeExecute
	}
	return probeNone
}

// CheckerConfig contains the knobs for constructing a Checker. The zero
// value is a fully working production configuration.
type CheckerConfig struct {
	// Platform overrides the platform identifier used to select the
	// execute-check strategy. Defaults to runtime.GOOS.
	Platform string

	// TestUtility overrides the external utility used to verify the execute
	// bit on POSIX-like platforms. Defaults to DefaultTestUtility.
	TestUtility string

	// ExecuteExtensions overrides the extension allow-list used on platforms
	// without an executable bit. Defaults to DefaultExecuteExtensions().
	ExecuteExtensions []string

	// Logger receives diagnostic output. Defaults to a no-op logger.
	Logger Logger
}

// Checker performs POSIX-style access checks. It is stateless across calls
// and safe for concurrent use; every invocation opens, probes, and closes
// its own resources.
type Checker struct {
	fs   fsys.FileSystem
	exec ExecutableChecker
	log  Logger
}

// NewChecker returns a Checker backed by the OS filesystem, with the
// execute-check strategy selected once from the platform identifier.
func NewChecker(cfg CheckerConfig) *Checker {
	log := cfg.Logger
	if log == nil {
		log = logging.NewNullLogger()
	}
	goos := cfg.Platform
	if goos == "" {
		goos = runtime.GOOS
	}
	return newChecker(
		fsys.NewOSFileSystem(),
		newExecutableChecker(goos, fsys.NewOSRunner(), cfg.TestUtility, cfg.ExecuteExtensions, log),
		log,
	)
}

// newChecker wires a Checker from explicit collaborators. Tests use this
// with the in-memory filesystem and fake runner.
func newChecker(fs fsys.FileSystem, exec ExecutableChecker, log Logger) *Checker {
	return &Checker{fs: fs, exec: exec, log: log}
}

// Access verifies that the current process can access path with the given
// mode. It returns nil on success, or a *AccessError matching ErrNotFound
// or ErrPermissionDenied via errors.Is. Mode defaults to ModeExists (the
// zero value).
//
// The result reflects the state of the path at probe time only; the
// check-then-use race of access(2) applies.
func (c *Checker) Access(ctx context.Context, path string, mode AccessMode) error {
	info, err := c.fs.Stat(path)
	if err != nil {
		return newAccessError(path, mode, err)
	}

	pr := resolveProbe(mode, info.IsDir())
	c.log.Verbose("access: %s on %q resolved to %s probe", mode, path, pr)
	if err := c.runProbe(ctx, pr, path); err != nil {
		return newAccessError(path, mode, err)
	}
	return nil
}

// AccessAsync performs the same check as Access without blocking the
// caller. The returned channel is buffered and receives exactly one value:
// the result of the identical decision tree the blocking form runs.
func (c *Checker) AccessAsync(ctx context.Context, path string, mode AccessMode) <-chan error {
	ch := make(chan error, 1)
	go func() {
		ch <- c.Access(ctx, path, mode)
	}()
	return ch
}

// IsExecutable reports whether path names a regular file the current
// process may execute. It never fails: paths that cannot be statted, or
// that are not regular files, report false.
func (c *Checker) IsExecutable(ctx context.Context, path string) bool {
	info, err := c.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return c.exec.Executable(ctx, path)
}

func (c *Checker) runProbe(ctx context.Context, pr probe, path string) error {
	switch pr {
	case probeOpenRead:
		f, err := c.fs.OpenRead(path)
		if err != nil {
			return err
		}
		return f.Close()

	case probeOpenWrite:
		f, err := c.fs.OpenWrite(path)
		if err != nil {
			return err
		}
		return f.Close()

	case probeListDir:
		// One entry is enough to prove enumerability; empty directories
		// succeed with no entries.
		_, err := c.fs.ReadDirNames(path, 1)
		return err

	case probeScratchEntry:
		// Writability of a directory has no cheaper portable signal than
		// creating and removing a uniquely named entry. The name collision
		// window and the entry churn are accepted, matching access(2)'s
		// non-atomic semantics.
		scratch := filepath.Join(path, scratchPrefix+uuid.NewString())
		if err := c.fs.CreateNew(scratch); err != nil {
			return err
		}
		return c.fs.Remove(scratch)

	case probeExecute:
		if !c.exec.Executable(ctx, path) {
			return ErrNotExecutable
		}
	}
	return nil
}

// defaultChecker backs the package-level convenience functions.
var defaultChecker = NewChecker(CheckerConfig{})

// Access checks path against mode using a process-wide default Checker.
func Access(path string, mode AccessMode) error {
	return defaultChecker.Access(context.Background(), path, mode)
}

// IsExecutable reports executability of path using a process-wide default
// Checker.
func IsExecutable(path string) bool {
	return defaultChecker.IsExecutable(context.Background(), path)
}

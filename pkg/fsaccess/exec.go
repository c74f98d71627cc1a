package fsaccess

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vvka-141/fsaccess/internal/fsys"
)

// ExecutableChecker answers whether a regular file is executable by the
// current process. Implementations never fail: any condition that prevents
// the probe degrades to false. Escalating false to a permission-denied
// error is the caller's decision, not this probe's.
type ExecutableChecker interface {
	Executable(ctx context.Context, path string) bool
}

// newExecutableChecker selects the execute-check strategy once for the
// given platform identifier. Platforms without a POSIX executable bit get
// the lexical extension match; everything else gets the empirical
// execute-bit probe.
func newExecutableChecker(goos string, runner fsys.Runner, utility string, extensions []string, log Logger) ExecutableChecker {
	if goos == "windows" {
		if len(extensions) == 0 {
			extensions = DefaultExecuteExtensions()
		}
		return newExtensionChecker(extensions)
	}
	if utility == "" {
		utility = DefaultTestUtility
	}
	return &execBitChecker{runner: runner, utility: utility, log: log}
}

// execBitChecker verifies the execute bit empirically: it spawns the
// external test utility with -x against the path and interprets the exit
// status. Exit 0 means executable, anything else means not.
type execBitChecker struct {
	runner  fsys.Runner
	utility string
	log     Logger
}

func (c *execBitChecker) Executable(ctx context.Context, path string) bool {
	// Capability query: if we cannot resolve the utility we are not in a
	// position to spawn it at all, so conservatively report non-executable
	// rather than failing.
	bin, err := c.runner.LookPath(c.utility)
	if err != nil {
		c.log.Verbose("execute probe unavailable (%v), reporting %q as non-executable", err, path)
		return false
	}

	code, err := c.runner.Run(ctx, bin, "-x", path)
	if err != nil {
		c.log.Verbose("execute probe for %q failed to run: %v", path, err)
		return false
	}
	return code == 0
}

// extensionChecker approximates execute permission lexically on platforms
// without an executable bit. No filesystem probe occurs.
type extensionChecker struct {
	extensions map[string]struct{} // lowercase, including the dot
}

func newExtensionChecker(extensions []string) *extensionChecker {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return &extensionChecker{extensions: set}
}

func (c *extensionChecker) Executable(_ context.Context, path string) bool {
	_, ok := c.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

package fsaccess

import (
	"fmt"
	"strings"
)

// AccessMode identifies the class of permission being probed.
// The numeric values follow the POSIX access(2) convention (F_OK=0, X_OK=1,
// W_OK=2, R_OK=4). Modes are bit-positioned but never combined here: each
// check probes exactly one mode.
type AccessMode int

const (
	// ModeExists (F_OK) checks existence only. This is the zero value, so it
	// is also what callers get when they leave the mode unspecified.
	ModeExists AccessMode = 0

	// ModeExecute (X_OK) checks execute permission.
	ModeExecute AccessMode = 1

	// ModeWrite (W_OK) checks write permission.
	ModeWrite AccessMode = 2

	// ModeRead (R_OK) checks read permission.
	ModeRead AccessMode = 4
)

// Name returns the human-readable mode name embedded in error messages.
// Values outside the four defined constants return the empty string.
func (m AccessMode) Name() string {
	switch m {
	case ModeExists:
		return "Exists"
	case ModeExecute:
		return "Executable"
	case ModeWrite:
		return "Writable"
	case ModeRead:
		return "Readable"
	}
	return ""
}

// String implements fmt.Stringer for logging.
func (m AccessMode) String() string {
	if name := m.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("AccessMode(%d)", int(m))
}

// ParseMode maps a CLI spelling to an AccessMode. Accepted spellings are the
// single POSIX letters (f, x, w, r) and the long mode names; the empty
// string defaults to ModeExists.
func ParseMode(s string) (AccessMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "f", "exists":
		return ModeExists, nil
	case "x", "execute", "executable":
		return ModeExecute, nil
	case "w", "write", "writable":
		return ModeWrite, nil
	case "r", "read", "readable":
		return ModeRead, nil
	}
	return ModeExists, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

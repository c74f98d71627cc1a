package fsaccess

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for the two failure classes an access check can report.
// These enable callers to distinguish error kinds using errors.Is().
//
// Example usage:
//
//	err := checker.Access(ctx, path, fsaccess.ModeWrite)
//	if errors.Is(err, fsaccess.ErrPermissionDenied) {
//	    // Path exists but the requested operation is not permitted.
//	}
var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("no such file or directory")

	// ErrPermissionDenied indicates the path exists but the requested mode
	// cannot be satisfied, or an underlying probe failed for any other
	// reason. The two cases are deliberately folded together.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotExecutable is the cause attached to a permission-denied outcome
	// when the execute-permission probe reports a file as non-executable.
	ErrNotExecutable = errors.New("file is not executable")

	// ErrUnknownMode indicates a mode spelling that could not be parsed.
	// Note that unknown numeric AccessMode values are NOT an error: they
	// fall through to ModeExists behavior.
	ErrUnknownMode = errors.New("unknown access mode")
)

// Error codes carried by AccessError, mirroring the POSIX errno names.
const (
	CodeNotFound         = "ENOENT"
	CodePermissionDenied = "EACCES"
)

// AccessError is the classified failure produced by an access check.
// Exactly one AccessError is produced per failing call.
type AccessError struct {
	// Code is CodeNotFound or CodePermissionDenied.
	Code string

	// Mode is the access mode that was requested.
	Mode AccessMode

	// Path is the path under test.
	Path string

	// Err is the original underlying failure, retained for diagnosis.
	Err error
}

// Error renders the normalized message shape:
//
//	ENOENT: no such file or directory, access '<path>'
//	EACCES: permission denied, <mode-name> '<path>'
func (e *AccessError) Error() string {
	if e.Code == CodeNotFound {
		return fmt.Sprintf("ENOENT: no such file or directory, access '%s'", e.Path)
	}
	return fmt.Sprintf("EACCES: permission denied, %s '%s'", e.Mode.Name(), e.Path)
}

// Unwrap returns the underlying cause.
func (e *AccessError) Unwrap() error { return e.Err }

// Is matches AccessError against the package sentinels.
func (e *AccessError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrPermissionDenied:
		return e.Code == CodePermissionDenied
	}
	return false
}

// newAccessError classifies cause into one of the two error kinds. A cause
// chain rooted in fs.ErrNotExist reports NOT_FOUND no matter which probe
// produced it; everything else is folded into PERMISSION_DENIED. Mid-probe
// disappearance classification is best effort: it reports whatever the
// underlying primitive reported.
func newAccessError(path string, mode AccessMode, cause error) *AccessError {
	code := CodePermissionDenied
	if errors.Is(cause, fs.ErrNotExist) {
		code = CodeNotFound
	}
	return &AccessError{Code: code, Mode: mode, Path: path, Err: cause}
}

// ExitCodeForError returns the appropriate process exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, ErrUnknownMode):
		return ExitUsageError
	}

	return ExitGeneralError
}

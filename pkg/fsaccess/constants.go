package fsaccess

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Access check passed
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitNotFound         = 10 // Path does not exist
	ExitPermissionDenied = 11 // Requested access mode not permitted
)

// DefaultTestUtility is the external utility spawned on POSIX-like platforms
// to verify the execute bit ("test -x <path>", exit 0 means executable).
const DefaultTestUtility = "test"

// DefaultExecuteExtensions is the case-insensitive extension allow-list used
// to approximate execute permission on platforms without an executable bit.
func DefaultExecuteExtensions() []string {
	return []string{".exe", ".cmd", ".bat", ".com"}
}

// scratchPrefix prefixes the uniquely named scratch entry created (and
// immediately removed) by the directory writability probe.
const scratchPrefix = ".fsaccess-"

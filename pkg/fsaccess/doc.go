// Package fsaccess implements POSIX-style access(2) checks that behave
// consistently across platforms.
//
// Given a path and an access mode (existence, read, write, execute), a
// Checker determines whether the current process can perform that operation.
// Because direct permission-bit inspection is not portable, each mode is
// verified by a minimal-impact probe: open-and-close for files, a single
// directory read for enumerability, create-then-delete of a scratch entry
// for directory writability, and an external execute-bit test for
// executability. Failures are normalized to exactly two kinds, ErrNotFound
// and ErrPermissionDenied, with the underlying cause chained for diagnosis.
//
// The check-then-use race inherent to access(2) is accepted here as well:
// a successful check is not a guarantee that a subsequent operation on the
// same path will succeed.
package fsaccess

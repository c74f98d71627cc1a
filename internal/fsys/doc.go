// Package fsys abstracts the filesystem and process primitives that access
// probes depend on.
//
// This package defines narrow interfaces over stat, open, directory
// enumeration, scratch-entry creation, and subprocess spawning, enabling
// testability through in-memory implementations while maintaining
// compatibility with the OS filesystem.
//
// Key interfaces:
//   - FileSystem: the minimal filesystem surface the probes need
//   - Runner: subprocess lookup and execution for the execute-bit probe
//
// Implementations:
//   - OSFileSystem / OSRunner: production implementations on os and os/exec
//   - MemoryFileSystem / FakeRunner: in-memory implementations for testing
package fsys

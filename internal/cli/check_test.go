package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsaccess/pkg/fsaccess"
)

func executeCommand(t *testing.T, args ...string) error {
	t.Helper()
	checkMode = ""
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheckCommand_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "readme.md")
	require.NoError(t, os.WriteFile(file, []byte("# hi"), 0o644))

	require.NoError(t, executeCommand(t, "check", file))
	require.NoError(t, executeCommand(t, "check", file, "--mode", "r"))
	require.NoError(t, executeCommand(t, "check", dir, "-m", "w"))
}

func TestCheckCommand_MissingPath(t *testing.T) {
	err := executeCommand(t, "check", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, fsaccess.ErrNotFound)
	require.Equal(t, fsaccess.ExitNotFound, fsaccess.ExitCodeForError(err))
}

func TestCheckCommand_UnknownMode(t *testing.T) {
	dir := t.TempDir()

	err := executeCommand(t, "check", dir, "--mode", "rwx")
	require.ErrorIs(t, err, fsaccess.ErrUnknownMode)
	require.Equal(t, fsaccess.ExitUsageError, fsaccess.ExitCodeForError(err))
}

func TestExecutableCommand_PlainFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("plain"), 0o644))

	err := executeCommand(t, "executable", file)
	require.ErrorIs(t, err, fsaccess.ErrNotExecutable)
	require.Equal(t, fsaccess.ExitGeneralError, fsaccess.ExitCodeForError(err))
}

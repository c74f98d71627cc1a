package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `
verbose: true
test_utility: gtest
execute_extensions:
  - .exe
  - .ps1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
	require.Equal(t, "gtest", cfg.TestUtility)
	require.Equal(t, []string{".exe", ".ps1"}, cfg.ExecuteExtensions)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("verbose: false\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.False(t, cfg.Verbose)
	require.Empty(t, cfg.TestUtility)
	require.Empty(t, cfg.ExecuteExtensions)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("verbose: [unclosed"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrConfigNotFound)
}

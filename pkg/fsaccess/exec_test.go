package fsaccess

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fsaccess/internal/fsys"
	"github.com/vvka-141/fsaccess/internal/logging"
)

func TestNewExecutableChecker_StrategySelection(t *testing.T) {
	log := logging.NewNullLogger()
	runner := &fsys.FakeRunner{}

	posix := newExecutableChecker("linux", runner, "", nil, log)
	require.IsType(t, &execBitChecker{}, posix)

	windows := newExecutableChecker("windows", runner, "", nil, log)
	require.IsType(t, &extensionChecker{}, windows)
}

func TestExtensionChecker_DefaultAllowList(t *testing.T) {
	checker := newExecutableChecker("windows", nil, "", nil, logging.NewNullLogger())
	ctx := context.Background()

	cases := []struct {
		path string
		want bool
	}{
		{`C:\tools\build.exe`, true},
		{`C:\tools\build.EXE`, true},
		{"setup.cmd", true},
		{"legacy.BAT", true},
		{"dos.com", true},
		{"script.sh", false},
		{"readme.md", false},
		{"noextension", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, checker.Executable(ctx, tc.path), "path %q", tc.path)
	}
}

func TestExtensionChecker_ConfiguredAllowList(t *testing.T) {
	checker := newExecutableChecker("windows", nil, "", []string{".ps1"}, logging.NewNullLogger())
	ctx := context.Background()

	require.True(t, checker.Executable(ctx, "deploy.PS1"))
	require.False(t, checker.Executable(ctx, "build.exe"), "override replaces the default list")
}

func TestExecBitChecker_ExitCodes(t *testing.T) {
	runner := &fsys.FakeRunner{ExitCodes: map[string]int{
		"/bin/yes": 0,
		"/bin/no":  1,
	}}
	checker := newExecutableChecker("linux", runner, "", nil, logging.NewNullLogger())
	ctx := context.Background()

	require.True(t, checker.Executable(ctx, "/bin/yes"))
	require.False(t, checker.Executable(ctx, "/bin/no"))
	require.False(t, checker.Executable(ctx, "/bin/unknown"))

	// The probe spawns the resolved utility with -x.
	require.Contains(t, runner.Calls, "/usr/bin/test -x /bin/yes")
}

func TestExecBitChecker_CustomUtility(t *testing.T) {
	runner := &fsys.FakeRunner{ExitCodes: map[string]int{"/bin/tool": 0}}
	checker := newExecutableChecker("linux", runner, "gtest", nil, logging.NewNullLogger())

	require.True(t, checker.Executable(context.Background(), "/bin/tool"))
	require.Contains(t, runner.Calls, "/usr/bin/gtest -x /bin/tool")
}

func TestExecBitChecker_SpawnFailuresAreFalse(t *testing.T) {
	ctx := context.Background()

	denied := newExecutableChecker("linux", &fsys.FakeRunner{LookPathErr: errors.New("denied")}, "", nil, logging.NewNullLogger())
	require.False(t, denied.Executable(ctx, "/bin/tool"))

	broken := newExecutableChecker("linux", &fsys.FakeRunner{RunErr: errors.New("fork failed")}, "", nil, logging.NewNullLogger())
	require.False(t, broken.Executable(ctx, "/bin/tool"))
}

package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true)

	logger.Verbose("test message: %s", "value")

	require.Equal(t, "[VERBOSE] test message: value\n", buf.String())
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Verbose("test message: %s", "value")

	require.Empty(t, buf.String())
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Info("checked %d paths", 3)

	require.Equal(t, "checked 3 paths\n", buf.String())
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Error("probe failed: %s", "disk error")

	require.Equal(t, "[ERROR] probe failed: disk error\n", buf.String())
}

func TestConsoleLogger_NoArgs_LiteralPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	// Without args the format must not be interpreted.
	logger.Info("100% done")

	require.Equal(t, "100% done\n", buf.String())
}

func TestConsoleLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Verbose("line")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		require.Equal(t, "[VERBOSE] line", line)
	}
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	logger := NewNullLogger()

	// Must not panic or produce output.
	logger.Verbose("v %d", 1)
	logger.Info("i")
	logger.Error("e %s", "x")
}

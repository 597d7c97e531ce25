package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("BasicLogging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "TEST", FlagLevel|FlagPrefix)

		logger.Info("Hello %s", "World")

		out := buf.String()
		assert.Contains(t, out, "[INFO]")
		assert.Contains(t, out, "[TEST]")
		assert.Contains(t, out, "Hello World")
		assert.True(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("LogLevels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "debug message")
		assert.NotContains(t, out, "info message")
		assert.Contains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})

	t.Run("Off", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", DefaultFlags)
		logger.SetLevel(LogLevelOff)

		logger.Error("should not appear")
		assert.Zero(t, buf.Len())
	})

	t.Run("FileInfo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagShortFile)

		logger.Info("test")
		assert.Contains(t, buf.String(), "logger_test.go:")
	})

	t.Run("ChildSharesSink", func(t *testing.T) {
		var buf bytes.Buffer
		parent := New(&buf, "vst2go", FlagPrefix)
		child := parent.With("bridge")

		parent.SetLevel(LogLevelError)
		child.Warn("dropped")
		child.Error("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "[vst2go.bridge] kept")
	})

	t.Run("Discard", func(t *testing.T) {
		l := Discard()
		assert.False(t, l.Enabled(LogLevelError))
		l.Error("nothing")
	})
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, lvl)

	lvl, err = ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LogLevelDebug)
	defer func() {
		SetOutput(os.Stderr)
		SetLevel(LogLevelInfo)
	}()

	Default().Debug("from default")
	assert.Contains(t, buf.String(), "from default")
}

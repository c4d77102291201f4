package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-cloud/nimbus-mcp/internal/buildinfo"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		lit  string
		want Level
	}{
		{"debug", Debug},
		{"info", Info},
		{"warn", Warn},
		{"error", Error},
		{"DEBUG", Debug},
		{"Warn", Warn},
		{"nonsense", Info},
		{"", Info},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.lit)
		assert.Equal(t, tt.want, levelFromEnv(), "LOG_LEVEL=%q", tt.lit)
	}
}

func TestLevelFromEnvUnsetDefaultsToDebugInDev(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info") // registers restore of the original value
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	require.True(t, buildinfo.IsDev(), "test binaries are never version-stamped")
	assert.Equal(t, Debug, levelFromEnv())
}

func TestLoggerFiltersBelowItsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Warn)

	log.Debugf("d %d", 1)
	log.Infof("i %d", 2)
	log.Warnf("w %d", 3)
	log.Errorf("e %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "d 1")
	assert.NotContains(t, out, "i 2")
	assert.Contains(t, out, "w 3")
	assert.Contains(t, out, "e 4")
}

func TestLoggerDebugLevelPassesEverything(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Debug)

	log.Debug("lowest")
	log.Error("highest")

	out := buf.String()
	assert.Contains(t, out, "lowest")
	assert.Contains(t, out, "highest")
}

func TestFromEnvHonorsLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	log := FromEnv(&buf)

	log.Warn("suppressed")
	log.Error("kept")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "kept")
}

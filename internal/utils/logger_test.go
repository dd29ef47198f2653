package utils

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogger_Progress(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRunLogger(&buf)
	defer logger.Close()

	logger.Progress("   + Added: %s (Priority: %s)", "hub.html", "0.8")
	logger.Progress("")

	assert.Equal(t, "   + Added: hub.html (Priority: 0.8)\n\n", buf.String())
	assert.Empty(t, logger.Path())
}

func TestRunLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRunLogger(&buf)

	logger.LogInfo("recorded %d entries", 4)
	logger.LogError("boom")
	logger.LogDebug("details")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "[INFO] recorded 4 entries"))
	assert.True(t, strings.HasSuffix(lines[1], "[ERROR] boom"))
	assert.True(t, strings.HasSuffix(lines[2], "[DEBUG] details"))
}

func TestFileRunLogger_WritesBoth(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()

	logger, err := NewFileRunLogger(&buf, dir)
	require.NoError(t, err)

	logger.Progress("Scanning directory... Found %d HTML files.", 2)
	logger.LogInfo("done")
	require.NoError(t, logger.Close())

	require.NotEmpty(t, logger.Path())
	data, err := os.ReadFile(logger.Path())
	require.NoError(t, err)

	assert.Equal(t, buf.String(), string(data))
	assert.Contains(t, string(data), "Scanning directory... Found 2 HTML files.")
	assert.Contains(t, string(data), "[INFO] done")
}

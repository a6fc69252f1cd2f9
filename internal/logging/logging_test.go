package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New(Options{Level: "debug", Format: FormatJSON, Out: &buf})
	require.NoError(t, err)
	defer cleanup()

	logger.Debug().Float64("temp", 5800).Msg("peak")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "peak", entry["message"])
	assert.InDelta(t, 5800, entry["temp"], 0)
}

func TestNewConsoleFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New(Options{Level: "WARN", Out: &buf})
	require.NoError(t, err)
	defer cleanup()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WRN")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackbody.log")
	var buf bytes.Buffer

	logger, cleanup, err := New(Options{Format: FormatJSON, Out: &buf, File: path})
	require.NoError(t, err)

	logger.Info().Str("cmd", "sweep").Msg("done")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"cmd":"sweep"`), "file content: %s", data)
	assert.Contains(t, buf.String(), `"cmd":"sweep"`)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, _, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

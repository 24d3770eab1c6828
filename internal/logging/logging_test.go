package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kemureco.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("mix saved", zap.Int64("mix_id", 7))
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "mix saved", entries[0]["msg"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.EqualValues(t, 7, entries[0]["mix_id"])
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kemureco.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("ratio redistributed", zap.Int("target", 1))
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0]["level"])
}

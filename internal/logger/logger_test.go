package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("WARN"))
	assert.Equal(t, ERROR, ParseLevel("error"))
	assert.Equal(t, INFO, ParseLevel("verbose"))
	assert.Equal(t, "WARN", WARN.String())
}

func TestStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: DEBUG, Writer: &buf})
	require.NoError(t, err)

	l.Info("Project blocked",
		F("project_id", "p1"),
		F("days", 2),
		F("error", errors.New("disk full")),
	)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "info", e["level"])
	assert.Equal(t, "Project blocked", e["message"])
	assert.Equal(t, "p1", e["project_id"])
	assert.Equal(t, float64(2), e["days"])
	assert.Equal(t, "disk full", e["error"])
	assert.Contains(t, e["caller"], "logger_test.go")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: WARN, Writer: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "error", entries[1]["level"])
}

func TestWithFieldsSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: INFO, Writer: &buf})
	require.NoError(t, err)

	child := l.WithFields(F("component", "scheduler"))
	child.Info("armed", F("open", 1))
	l.Info("plain")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "scheduler", entries[0]["component"])
	assert.NotContains(t, entries[1], "component")
}

func TestFileRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shootcal.log")
	l, err := New(Config{Level: INFO, FilePath: path, MaxSize: 200, MaxBackups: 2})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		l.Info("a message long enough to fill the log quickly", F("i", i))
	}
	require.NoError(t, l.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + ".1")
	assert.NoError(t, err, "rotated backup exists")
	_, err = os.Stat(path + ".3")
	assert.True(t, os.IsNotExist(err), "backups are capped")

	// Logging after Close is a no-op
	l.Info("after close")
}

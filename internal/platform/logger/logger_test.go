package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("bogus"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestSlogLogger_JSON_WithFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "petclinic", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"request_id": "r-1"}).Info("handled", map[string]any{"status": 200, "": "skip"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "handled", entry["msg"])
	assert.Equal(t, "petclinic", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.EqualValues(t, 200, entry["status"])
	assert.NotContains(t, entry, "")
}

func TestSlogLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Output: &buf})

	l.Warn("careful", map[string]any{"k": "v"})

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=careful")
	assert.Contains(t, out, "k=v")
}

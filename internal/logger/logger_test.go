package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

// TestNew_Fields verifies role, timestamp and caller fields.
func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", &buf, "debug")

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "ts")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "hello", entry["message"])
}

// TestNew_Level verifies that entries below the configured level are dropped.
func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New("lvl", &buf, "warn")

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

// TestNew_UnknownLevelIsDebug verifies the debug fallback.
func TestNew_UnknownLevelIsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New("lvl", &buf, "chatty")

	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

// TestNewClientLogger_WritesFile verifies that the client logger appends to
// the configured file.
func TestNewClientLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("client", path, "info")
	l.Info().Str("action", "chat").Msg("sent")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "chat", entry["action"])
}

// TestNewClientLogger_UnwritablePath verifies that an unusable path does not
// panic and yields a working logger.
func TestNewClientLogger_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l := NewClientLogger("client", path, "")
	require.NotNil(t, l)
	l.Info().Msg("discarded")
}

func TestDefaultLogPath(t *testing.T) {
	assert.Equal(t, DefaultLogFileName, filepath.Base(DefaultLogPath()))
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestGetChildLogger_Independent verifies that enriching a child does not
// leak fields into the parent.
func TestGetChildLogger_Independent(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent", &buf, "debug")
	child := parent.GetChildLogger()
	child.Logger = child.With().Str("extra", "x").Logger()

	parent.Info().Msg("p")
	entry := decodeEntry(t, buf.Bytes())
	assert.NotContains(t, entry, "extra")
}

func TestWithAction(t *testing.T) {
	var buf bytes.Buffer
	l := New("client", &buf, "debug").WithAction("set_mode", "req-1")

	l.Debug().Msg("x")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "set_mode", entry["action"])
	assert.Equal(t, "req-1", entry["request_id"])
}

// TestFromContext verifies round-tripping a logger through the context.
func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx", &buf, "debug")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "ctx", entry["role"])
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", false)
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every entry carries the "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role", true)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantLevel zerolog.Level
	}{
		{name: "verbose", verbose: true, wantLevel: zerolog.DebugLevel},
		{name: "quiet", verbose: false, wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newLogger(&bytes.Buffer{}, "level", tt.verbose)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

// TestNewLogger_DebugSuppressedWhenQuiet verifies that debug entries are
// dropped outside development.
func TestNewLogger_DebugSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "quiet", false)

	l.Debug().Msg("hidden")

	assert.Empty(t, buf.String())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_IndependentOfParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent", true)

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("from parent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "trace_id")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx-role", true)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "req-role", true)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("via request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-role", entry["role"])
}

func TestFromContext_NoLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

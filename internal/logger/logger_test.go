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

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("help-me-shop-server")
	l.Logger = l.Output(&buf)

	l.Info().Str("list_id", "AZLxoAAAcACAAKqqqqqqqg==").Msg("list created")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "help-me-shop-server", entry["role"])
	assert.Equal(t, "list created", entry["message"])
	assert.Equal(t, "AZLxoAAAcACAAKqqqqqqqg==", entry["list_id"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_Level(t *testing.T) {
	tests := []struct {
		verbose bool
		want    zerolog.Level
	}{
		{verbose: false, want: zerolog.WarnLevel},
		{verbose: true, want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		l := NewClientLogger("hms", tt.verbose)
		assert.Equal(t, tt.want, l.GetLevel(), "verbose=%v", tt.verbose)
	}
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "worker").Logger()}

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("probe", "database").Logger()
	require.NotSame(t, parent, child)

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "worker", entry["role"])
	assert.Equal(t, "database", entry["probe"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "probe")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "cv0abc").Logger()
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "cv0abc", decodeEntry(t, &buf)["trace_id"])

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/api/lists", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "cv0abc", decodeEntry(t, &buf)["trace_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("nowhere") })
}

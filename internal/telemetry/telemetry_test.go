package telemetry_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/petasbytes/sous-chef/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, b []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), "line %q", sc.Text())
		out = append(out, m)
	}
	return out
}

func TestEmit_HappyPath(t *testing.T) {
	var buf bytes.Buffer
	e := telemetry.New(&buf)
	ctx := telemetry.WithTurnID(context.Background(), "t1")

	e.Emit(ctx, "tool_exec", slog.String("tool_name", "view_pantry"), telemetry.ErrorAttr(nil))

	lines := decodeLines(t, buf.Bytes())
	require.Len(t, lines, 1)
	m := lines[0]
	assert.Equal(t, "tool_exec", m["event"])
	assert.Equal(t, "view_pantry", m["tool_name"])
	assert.Equal(t, "t1", m["turn_id"])
	assert.Contains(t, m, "time")
	assert.NotContains(t, m, "level")
	require.Contains(t, m, "error")
	assert.Nil(t, m["error"])
}

func TestEmit_ErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	telemetry.New(&buf).Emit(context.Background(), "memory_persist", telemetry.ErrorAttr(errors.New("disk full")))

	lines := decodeLines(t, buf.Bytes())
	require.Len(t, lines, 1)
	assert.Equal(t, "disk full", lines[0]["error"])
	assert.NotContains(t, lines[0], "turn_id", "no turn on the context")
}

func TestEmit_DiscardAndNil(t *testing.T) {
	telemetry.Discard().Emit(context.Background(), "x")
	var e *telemetry.Emitter
	e.Emit(context.Background(), "x")
	assert.NoError(t, e.Close())
}

func TestOpen_AppendsToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "events.jsonl")

	for i := 0; i < 2; i++ {
		e, err := telemetry.Open(p)
		require.NoError(t, err)
		e.Emit(context.Background(), "model_call", slog.Int("n", i))
		require.NoError(t, e.Close())
	}

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := decodeLines(t, b)
	require.Len(t, lines, 2)
	assert.Equal(t, float64(1), lines[1]["n"])
}

// Package telemetry writes an optional JSONL stream of agent events, one object
// per line with "time", "event" and the event's own fields.
//
// Events:
//   - model_call: model, prompt_runes, response_runes, window stats, error
//   - tool_exec: tool_name, duration_ms, error
//   - memory_persist: user_id, error
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Emitter writes events. The zero value and a nil *Emitter drop everything.
type Emitter struct {
	logger *slog.Logger
	closer io.Closer
}

// New returns an Emitter writing to w.
func New(w io.Writer) *Emitter {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.LevelKey:
				return slog.Attr{}
			case slog.MessageKey:
				a.Key = "event"
			}
			return a
		},
	})
	return &Emitter{logger: slog.New(h)}
}

// Open appends events to the file at path, creating parent directories.
func Open(path string) (*Emitter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "telemetry: mkdir %s", filepath.Dir(path))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "telemetry: open %s", path)
	}
	e := New(f)
	e.closer = f
	return e, nil
}

// Discard returns an Emitter that writes nothing.
func Discard() *Emitter { return &Emitter{} }

// Emit writes one event. The turn ID on ctx, when present, is added as turn_id.
func (e *Emitter) Emit(ctx context.Context, name string, attrs ...slog.Attr) {
	if e == nil || e.logger == nil {
		return
	}
	if id, ok := TurnIDFromContext(ctx); ok {
		attrs = append([]slog.Attr{slog.String("turn_id", id)}, attrs...)
	}
	e.logger.LogAttrs(ctx, slog.LevelInfo, name, attrs...)
}

// ErrorAttr renders err as an "error" field, null when err is nil.
func ErrorAttr(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}

func (e *Emitter) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

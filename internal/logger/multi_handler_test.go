package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&buf1, nil),
		slog.NewJSONHandler(&buf2, nil),
	)

	log := slog.New(h)
	log.Info("fan out", "key", "value")

	for i, buf := range []*bytes.Buffer{&buf1, &buf2} {
		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("handler %d: failed to parse JSON: %v", i+1, err)
		}
		if entry["msg"] != "fan out" {
			t.Errorf("handler %d: msg = %v, want %q", i+1, entry["msg"], "fan out")
		}
	}
}

func TestMultiHandlerSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(nil, slog.NewJSONHandler(&buf, nil))

	if err := slog.New(h).Handler().Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "ok", 0)); err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected record on non-nil handler")
	}
}

func TestAsyncHandlerDrain(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	h := NewAsyncHandler(inner, AsyncOptions{BufferSize: 8})

	log := slog.New(h)
	log.Info("queued")

	if err := h.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected record to be flushed on shutdown")
	}
	if h.Dropped() != 0 {
		t.Errorf("Dropped() = %d, want 0", h.Dropped())
	}
}

package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultAsyncBufferSize   = 1024
	defaultAsyncFlushTimeout = 5 * time.Second
)

// AsyncOptions configures the async log pipeline.
type AsyncOptions struct {
	BufferSize   int
	FlushTimeout time.Duration
}

// AsyncHandler wraps a slog.Handler and dispatches records from a background
// goroutine. Records are dropped rather than blocking when the buffer is full;
// the drop count is kept for diagnostics.
type AsyncHandler struct {
	handler      slog.Handler
	ch           chan asyncRecord
	flushTimeout time.Duration
	closed       atomic.Bool
	dropped      atomic.Uint64
	wg           sync.WaitGroup
}

type asyncRecord struct {
	ctx     context.Context
	record  slog.Record
	handler slog.Handler
}

// NewAsyncHandler creates a new async handler and starts its worker goroutine.
func NewAsyncHandler(handler slog.Handler, opts AsyncOptions) *AsyncHandler {
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultAsyncBufferSize
	}
	flushTimeout := opts.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = defaultAsyncFlushTimeout
	}

	h := &AsyncHandler{
		handler:      handler,
		ch:           make(chan asyncRecord, bufferSize),
		flushTimeout: flushTimeout,
	}
	h.wg.Add(1)
	go h.run()
	return h
}

func (h *AsyncHandler) run() {
	defer h.wg.Done()
	for rec := range h.ch {
		_ = rec.handler.Handle(rec.ctx, rec.record)
	}
}

// Enabled reports whether the underlying handler is enabled for the given level.
func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle enqueues the record for async processing.
func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.closed.Load() || !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	select {
	case h.ch <- asyncRecord{ctx: context.WithoutCancel(ctx), record: r.Clone(), handler: h.handler}:
	default:
		h.dropped.Add(1)
	}
	return nil
}

// Dropped returns the number of records discarded due to a full buffer.
func (h *AsyncHandler) Dropped() uint64 {
	return h.dropped.Load()
}

// Shutdown stops accepting records and waits for the buffer to drain,
// bounded by the flush timeout or the provided context deadline.
func (h *AsyncHandler) Shutdown(ctx context.Context) error {
	if h.closed.Swap(true) {
		return nil
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.flushTimeout)
		defer cancel()
	}
	close(h.ch)
	finished := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WithAttrs returns a handler that shares this worker with the attributes applied.
func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrHandler{parent: h, handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a handler that shares this worker with the group applied.
func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &attrHandler{parent: h, handler: h.handler.WithGroup(name)}
}

// attrHandler routes records through the parent worker while carrying
// derived attributes or groups.
type attrHandler struct {
	parent  *AsyncHandler
	handler slog.Handler
}

func (h *attrHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *attrHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.parent.closed.Load() {
		return nil
	}
	select {
	case h.parent.ch <- asyncRecord{ctx: context.WithoutCancel(ctx), record: r.Clone(), handler: h.handler}:
	default:
		h.parent.dropped.Add(1)
	}
	return nil
}

func (h *attrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrHandler{parent: h.parent, handler: h.handler.WithAttrs(attrs)}
}

func (h *attrHandler) WithGroup(name string) slog.Handler {
	return &attrHandler{parent: h.parent, handler: h.handler.WithGroup(name)}
}

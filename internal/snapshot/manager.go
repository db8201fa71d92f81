package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Manager keeps a local dataset file in sync with its R2 object. Updates
// are detected by ETag change; the local file is replaced atomically and
// the onUpdate callback fires so the caller can drop its in-memory cache.
type Manager struct {
	client   *Client
	key      string
	destPath string
	onUpdate func()
	log      *slog.Logger

	mu          sync.RWMutex
	currentETag string

	pollCancel context.CancelFunc
	pollDone   chan struct{}
}

// NewManager creates a manager for the object at key, materialized at
// destPath. onUpdate may be nil.
func NewManager(client *Client, key, destPath string, onUpdate func(), log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		client:   client,
		key:      key,
		destPath: destPath,
		onUpdate: onUpdate,
		log:      log,
	}
}

// Sync downloads the dataset if the remote ETag differs from the last one
// seen. Returns true when the local file was replaced.
func (m *Manager) Sync(ctx context.Context) (bool, error) {
	m.mu.RLock()
	current := m.currentETag
	m.mu.RUnlock()

	remote, err := m.client.HeadObject(ctx, m.key)
	if err != nil {
		return false, err
	}
	if remote == current && current != "" {
		return false, nil
	}

	body, etag, err := m.client.Download(ctx, m.key)
	if err != nil {
		return false, err
	}
	defer body.Close()

	if err := m.materialize(body); err != nil {
		return false, err
	}

	m.mu.Lock()
	m.currentETag = etag
	m.mu.Unlock()

	if m.onUpdate != nil {
		m.onUpdate()
	}
	m.log.Info("dataset snapshot synced", "key", m.key, "dest", m.destPath, "etag", etag)
	return true, nil
}

// materialize writes the (possibly zstd-compressed) body to destPath via
// a temp file and rename, so readers never see a partial file.
func (m *Manager) materialize(body io.Reader) error {
	if strings.HasSuffix(m.key, ".zst") {
		dec, err := zstd.NewReader(body)
		if err != nil {
			return fmt.Errorf("snapshot: open zstd decoder: %w", err)
		}
		defer dec.Close()
		body = dec
	}

	if err := os.MkdirAll(filepath.Dir(m.destPath), 0o755); err != nil {
		return fmt.Errorf("snapshot: create dest dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.destPath), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, m.destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: replace dataset: %w", err)
	}
	return nil
}

// StartPolling re-syncs on the given interval until the context is
// cancelled or StopPolling is called.
func (m *Manager) StartPolling(ctx context.Context, interval time.Duration) {
	pollCtx, cancel := context.WithCancel(ctx)
	m.pollCancel = cancel
	m.pollDone = make(chan struct{})

	go func() {
		defer close(m.pollDone)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-pollCtx.Done():
				m.log.Info("snapshot polling stopped", "key", m.key)
				return
			case <-ticker.C:
				if _, err := m.Sync(pollCtx); err != nil && !errors.Is(err, context.Canceled) {
					m.log.Warn("snapshot poll failed", "key", m.key, "error", err)
				}
			}
		}
	}()

	m.log.Info("snapshot polling started", "key", m.key, "interval", interval)
}

// StopPolling stops the background polling goroutine.
func (m *Manager) StopPolling() {
	if m.pollCancel != nil {
		m.pollCancel()
		<-m.pollDone
	}
}

// CurrentETag returns the ETag of the last synced snapshot.
func (m *Manager) CurrentETag() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentETag
}

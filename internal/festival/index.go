package festival

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/chaeni-dev/ICT-INNO/internal/district"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
)

// Index serves active-festival lookups over a lazily loaded, memoized
// dataset. The first lookup after construction or Invalidate triggers a
// load; concurrent first lookups share a single load via singleflight.
//
// A failed load is memoized the same way as a successful one: lookups
// return an empty slice and the file is not retried until Invalidate
// clears the cache, so a bad dataset cannot add a stat() per request.
type Index struct {
	path    string
	log     *slog.Logger
	metrics *metrics.Metrics

	mu        sync.RWMutex
	festivals []Festival
	loaded    bool

	group singleflight.Group
}

// NewIndex creates an index over the dataset file at path. Metrics may be
// nil in tests.
func NewIndex(path string, log *slog.Logger, m *metrics.Metrics) *Index {
	if log == nil {
		log = slog.Default()
	}
	return &Index{path: path, log: log, metrics: m}
}

// Load forces the dataset into memory, replacing any cached copy.
func (ix *Index) Load() error {
	_, err, _ := ix.group.Do("load", func() (any, error) {
		result, err := LoadFile(ix.path)
		if err != nil {
			ix.mu.Lock()
			ix.festivals = nil
			ix.loaded = true
			ix.mu.Unlock()
			return nil, err
		}

		ix.mu.Lock()
		ix.festivals = result.Festivals
		ix.loaded = true
		ix.mu.Unlock()

		if ix.metrics != nil {
			ix.metrics.FestivalCacheSize.Set(float64(len(result.Festivals)))
			ix.metrics.FestivalRowsDropped.Add(float64(result.Dropped))
		}
		ix.log.Info("festival dataset loaded",
			"path", ix.path,
			"rows", len(result.Festivals),
			"dropped", result.Dropped)
		return nil, nil
	})
	return err
}

// Invalidate discards the cached dataset. The next lookup reloads it.
// Call this after a new snapshot has been written to the dataset path.
func (ix *Index) Invalidate() {
	ix.mu.Lock()
	ix.festivals = nil
	ix.loaded = false
	ix.mu.Unlock()
	ix.log.Info("festival cache invalidated", "path", ix.path)
}

// ActiveFestivals returns festivals whose period contains now, optionally
// filtered to a district. An empty district name means no filter. Lookups
// never fail: if the dataset cannot be loaded the result is empty and
// stays empty until Invalidate.
func (ix *Index) ActiveFestivals(d district.Name, now time.Time) []Festival {
	ix.mu.RLock()
	loaded := ix.loaded
	ix.mu.RUnlock()

	if !loaded {
		if err := ix.Load(); err != nil {
			ix.log.Warn("festival dataset load failed", "path", ix.path, "error", err)
			if ix.metrics != nil {
				ix.metrics.FestivalLookupsTotal.WithLabelValues("load_error").Inc()
			}
			return nil
		}
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var active []Festival
	for _, f := range ix.festivals {
		if d != "" && f.District != d {
			continue
		}
		if f.Period.Contains(now) {
			active = append(active, f)
		}
	}

	if ix.metrics != nil {
		outcome := "hit"
		if len(active) == 0 {
			outcome = "miss"
		}
		ix.metrics.FestivalLookupsTotal.WithLabelValues(outcome).Inc()
	}
	return active
}

// Size returns the number of cached festivals, or zero when not loaded.
func (ix *Index) Size() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.festivals)
}

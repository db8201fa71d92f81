package insight

import (
	"strings"

	"github.com/chaeni-dev/ICT-INNO/internal/stringutil"
)

// Result is the outcome of a gazetteer lookup.
type Result struct {
	// Insight is the matched record, or the fallback when Matched is false.
	Insight SpotInsight
	// Key is the table key that matched, or FallbackKey.
	Key string
	// Matched reports whether a curated entry matched the input.
	Matched bool
}

// Match resolves a free-text location against the gazetteer.
//
// The containment check runs in both directions: a full address may contain a
// table key ("부산 해운대구 우동" vs "해운대구"), and a short input may be
// contained in a longer key ("전포" vs "서면/전포"). The first table entry
// that satisfies either direction wins. Empty input goes straight to the
// fallback record.
func Match(location string) Result {
	normalized := stringutil.Normalize(location)
	if normalized != "" {
		for _, e := range spots {
			candidate := stringutil.Normalize(e.key)
			if strings.Contains(candidate, normalized) || strings.Contains(normalized, candidate) {
				return Result{Insight: e.insight, Key: e.key, Matched: true}
			}
		}
	}
	return Result{Insight: neighborhood, Key: FallbackKey, Matched: false}
}

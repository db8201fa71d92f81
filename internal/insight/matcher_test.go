package insight

import (
	"reflect"
	"testing"
)

func TestMatchAliasesShareContent(t *testing.T) {
	aliases := map[string]string{
		"부산진구": "서면/전포",
		"수영구":  "광안리",
		"해운대구": "해운대",
		"중구":   "남포동(자갈치/국제시장)",
		"기장군":  "기장(오시리아)",
		"영도구":  "영도(흰여울)",
	}

	for alias, canonical := range aliases {
		t.Run(alias, func(t *testing.T) {
			a := Match(alias)
			c := Match(canonical)
			if !a.Matched || !c.Matched {
				t.Fatalf("expected both %q and %q to match", alias, canonical)
			}
			if !reflect.DeepEqual(a.Insight, c.Insight) {
				t.Errorf("alias %q insight differs from canonical %q", alias, canonical)
			}
		})
	}
}

func TestMatchSubstringBothDirections(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKey  string
		matched  bool
	}{
		{"Short input inside key", "전포", "서면/전포", true},
		{"Key inside full address", "부산 해운대구 우동 123", "해운대구", true},
		{"Exact key", "광안리", "광안리", true},
		{"Case folded", "광안리 BEACH 근처", "광안리", true},
		{"Unknown location", "서울 강남구", FallbackKey, false},
		{"Empty input", "", FallbackKey, false},
		{"Whitespace only", "   ", FallbackKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.input)
			if got.Key != tt.wantKey {
				t.Errorf("Match(%q).Key = %q, want %q", tt.input, got.Key, tt.wantKey)
			}
			if got.Matched != tt.matched {
				t.Errorf("Match(%q).Matched = %v, want %v", tt.input, got.Matched, tt.matched)
			}
		})
	}
}

func TestMatchFallbackContent(t *testing.T) {
	got := Match("알 수 없는 동네")
	if got.Matched {
		t.Fatal("unknown location should not match")
	}
	if !reflect.DeepEqual(got.Insight, Fallback()) {
		t.Error("fallback result should carry the generic neighborhood record")
	}
	if len(got.Insight.Hashtags) == 0 {
		t.Error("fallback record must provide seed hashtags")
	}
}

func TestKeysOrderPinned(t *testing.T) {
	keys := Keys()
	if len(keys) != 13 {
		t.Fatalf("expected 13 gazetteer keys, got %d", len(keys))
	}
	// First-match wins, so the canonical spot must precede its district alias.
	idx := func(k string) int {
		for i, key := range keys {
			if key == k {
				return i
			}
		}
		return -1
	}
	if idx("서면/전포") > idx("부산진구") {
		t.Error("서면/전포 must precede its alias 부산진구")
	}
	if keys[len(keys)-1] != FallbackKey {
		t.Errorf("fallback key must be last, got %q", keys[len(keys)-1])
	}
}

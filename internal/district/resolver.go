package district

import (
	"regexp"
	"strings"

	"github.com/chaeni-dev/ICT-INNO/internal/stringutil"
)

// districtSuffixRe matches a trailing Hangul district name ending in 구/군,
// so address-like inputs ("창원 의창구") still resolve.
var districtSuffixRe = regexp.MustCompile(`[가-힣]+[구군]$`)

// Resolve maps free-text location or address input to a district.
//
// The keyword table is consulted first, in table order; the first keyword
// that is a substring of the input wins. If no keyword matches but the
// trimmed input ends in a Hangul 구/군 name, the input is treated as
// already naming a district and returned unchanged. Otherwise the second
// return value is false and callers must apply no district filter.
func Resolve(text string) (Name, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	normalized := stringutil.Normalize(trimmed)
	for _, e := range keywords {
		if strings.Contains(normalized, e.keyword) {
			return e.district, true
		}
	}

	if districtSuffixRe.MatchString(trimmed) {
		return Name(trimmed), true
	}

	return "", false
}

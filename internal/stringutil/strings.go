// Package stringutil provides common string manipulation utilities.
package stringutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace, applies Unicode NFC composition and
// lowercases the result. Korean IMEs and copy-pasted addresses occasionally
// produce decomposed Hangul jamo sequences; NFC makes substring matching
// against the composed table keys reliable.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// ContainsFold reports whether s contains substr after Normalize is applied
// to both sides. Empty substr returns true, matching strings.Contains.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Normalize(s), Normalize(substr))
}

// IsHangul reports whether r falls in the Hangul syllables block (가-힣).
func IsHangul(r rune) bool {
	return r >= '가' && r <= '힣'
}

// StripToPlaceName removes every rune that is not a letter, digit, space or
// Hangul syllable. Used to turn free-text location input like "기장(오시리아)"
// into a term a weather API can resolve.
func StripToPlaceName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || IsHangul(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

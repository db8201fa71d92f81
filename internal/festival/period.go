// Package festival loads the Busan festival dataset from CSV and serves
// district-filtered lookups of festivals active at a given instant.
package festival

import (
	"regexp"
	"time"

	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
)

// KST is the timezone all festival periods are interpreted in.
// A fixed offset avoids a runtime dependency on the host tzdata.
var KST = time.FixedZone("KST", 9*60*60)

// Period is an inclusive date range. End is the last representable
// millisecond of the closing day.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

var (
	// Day-of-week markers such as "(토)" that the source data appends
	// after dates. They break the numeric range pattern and carry no
	// information the dates do not.
	dayMarkerRe = regexp.MustCompile(`\([가-힣]\)`)

	// Matches ranges like "2025.7.5 ~ 7.13", "2025. 7. 5. ~ 2026. 1. 2."
	// The end year is optional; when absent it is inferred from the start.
	periodRe = regexp.MustCompile(`(\d{4})\.?\s*(\d{1,2})\.?\s*(\d{1,2})\.?\s*~\s*(?:(\d{4})\.?\s*)?(\d{1,2})\.?\s*(\d{1,2})\.?`)
)

// ParsePeriod extracts a date range from free-form period text as it
// appears in the dataset, e.g. "2025. 7. 5.(토) ~ 7. 13.(일)".
//
// Rows without a recognizable "start ~ end" range (such as "2025년 8월 중
// (예정)") return ErrUnparsablePeriod. When the end carries no year and its
// month precedes the start month, the range is assumed to cross into the
// next year.
func ParsePeriod(text string) (Period, error) {
	cleaned := dayMarkerRe.ReplaceAllString(text, "")

	m := periodRe.FindStringSubmatch(cleaned)
	if m == nil {
		return Period{}, apperrors.ErrUnparsablePeriod
	}

	startYear := atoi(m[1])
	startMonth := atoi(m[2])
	startDay := atoi(m[3])

	endYear := startYear
	if m[4] != "" {
		endYear = atoi(m[4])
	}
	endMonth := atoi(m[5])
	endDay := atoi(m[6])
	if m[4] == "" && endMonth < startMonth {
		endYear = startYear + 1
	}

	if !validDate(startYear, startMonth, startDay) || !validDate(endYear, endMonth, endDay) {
		return Period{}, apperrors.ErrUnparsablePeriod
	}

	start := time.Date(startYear, time.Month(startMonth), startDay, 0, 0, 0, 0, KST)
	end := time.Date(endYear, time.Month(endMonth), endDay, 23, 59, 59, 999_000_000, KST)
	if end.Before(start) {
		return Period{}, apperrors.ErrUnparsablePeriod
	}

	return Period{Start: start, End: end}, nil
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	// Reject normalized overflow such as 2.30 turning into 3.2.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, KST)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

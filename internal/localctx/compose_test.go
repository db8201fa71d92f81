package localctx

import (
	"testing"
	"time"
)

var kst = time.FixedZone("KST", 9*60*60)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, kst)
}

func TestTimeOfDay(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"weekday morning", at(2025, 9, 1, 8, 0), "아침"},        // Monday
		{"morning lower bound", at(2025, 9, 1, 6, 0), "아침"},    // Monday
		{"lunch", at(2025, 9, 2, 12, 30), "점심"},               // Tuesday
		{"afternoon", at(2025, 9, 3, 15, 0), "오후"},            // Wednesday
		{"commute evening", at(2025, 9, 4, 18, 0), "퇴근길 저녁"},   // Thursday
		{"late night", at(2025, 9, 3, 23, 0), "밤"},            // Wednesday
		{"early hours", at(2025, 9, 3, 3, 0), "밤"},            // Wednesday
		{"friday night", at(2025, 9, 5, 18, 0), "불금 밤"},       // Friday 18:00
		{"friday late", at(2025, 9, 5, 23, 30), "불금 밤"},       // Friday
		{"friday afternoon stays plain", at(2025, 9, 5, 15, 0), "오후"},
		{"friday just before six", at(2025, 9, 5, 17, 59), "퇴근길 저녁"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := TimeOfDay(c.now); got != c.want {
				t.Errorf("TimeOfDay(%v) = %q, want %q", c.now, got, c.want)
			}
		})
	}
}

func TestDayLabel(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{at(2025, 9, 1, 10, 0), "월요일"},
		{at(2025, 9, 5, 10, 0), "금요일"},
		{at(2025, 9, 6, 10, 0), "여유로운 토요일"},
		{at(2025, 9, 7, 10, 0), "여유로운 일요일"},
	}

	for _, c := range cases {
		if got := DayLabel(c.now); got != c.want {
			t.Errorf("DayLabel(%v) = %q, want %q", c.now, got, c.want)
		}
	}
}

func TestCompose(t *testing.T) {
	now := at(2025, 9, 5, 20, 0) // Friday night
	got := Compose(now, "맑음, 27도")
	want := "금요일 불금 밤, 맑음, 27도"
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}

	// Same clock always yields the same line.
	if again := Compose(now, "맑음, 27도"); again != got {
		t.Errorf("Compose not deterministic: %q vs %q", got, again)
	}

	if got := Compose(now, ""); got != "금요일 불금 밤" {
		t.Errorf("Compose without weather = %q", got)
	}
}

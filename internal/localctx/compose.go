// Package localctx derives the Korean day and time-of-day wording used in
// promotional copy from a concrete instant, and joins it with a weather
// summary into a single context line.
package localctx

import (
	"fmt"
	"time"
)

var dayNames = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// DayLabel returns the Korean weekday, e.g. "금요일". Weekend days carry a
// relaxed prefix so copy reads like weekend copy: "여유로운 토요일".
func DayLabel(now time.Time) string {
	label := dayNames[now.Weekday()] + "요일"
	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return "여유로운 " + label
	}
	return label
}

// TimeOfDay buckets the hour into the slot wording the copy uses. Friday
// evenings from 18:00 get the idiomatic "불금 밤" instead of the plain
// evening slot.
func TimeOfDay(now time.Time) string {
	if now.Weekday() == time.Friday && now.Hour() >= 18 {
		return "불금 밤"
	}

	switch h := now.Hour(); {
	case h >= 6 && h < 11:
		return "아침"
	case h >= 11 && h < 14:
		return "점심"
	case h >= 14 && h < 17:
		return "오후"
	case h >= 17 && h < 20:
		return "퇴근길 저녁"
	default:
		return "밤"
	}
}

// Compose builds the full context line fed into the prompt, e.g.
// "금요일 불금 밤, 맑음, 27도". The weather summary is already a complete
// phrase, including its degraded form, so it is appended verbatim.
func Compose(now time.Time, weather string) string {
	if weather == "" {
		return fmt.Sprintf("%s %s", DayLabel(now), TimeOfDay(now))
	}
	return fmt.Sprintf("%s %s, %s", DayLabel(now), TimeOfDay(now), weather)
}

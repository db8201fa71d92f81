package weather

import "strings"

// condition maps an English weather description keyword to its Korean
// label. First match wins, so specific phrases sit above generic words.
type condition struct {
	keyword string
	korean  string
}

var conditions = []condition{
	{"sunny", "맑음"},
	{"clear", "맑음"},
	{"partly cloudy", "구름 조금"},
	{"cloud", "흐림"},
	{"overcast", "잔뜩 흐림"},
	{"light rain", "보슬비"},
	{"patchy rain", "보슬비"},
	{"rain", "비"},
	{"shower", "비"},
	{"snow", "눈"},
	{"blizzard", "눈"},
	{"fog", "안개"},
	{"mist", "안개"},
	{"thunder", "천둥번개"},
}

// Translate converts a wttr.in weather description to Korean. Unknown
// descriptions fall back to a neutral label rather than leaking English
// into prompt text.
func Translate(desc string) string {
	lower := strings.ToLower(desc)
	for _, c := range conditions {
		if strings.Contains(lower, c.keyword) {
			return c.korean
		}
	}
	return "대체로 맑음"
}

package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// emptyOutputText replaces channels the model left blank.
const emptyOutputText = "생성된 문구가 없습니다."

// ChannelTexts holds the generated copy per marketing channel.
type ChannelTexts struct {
	Feed  string `json:"feed"`
	Story string `json:"story"`
	Map   string `json:"map"`
	SMS   string `json:"sms"`
}

// Models frequently wrap JSON in a markdown fence despite instructions.
var fencedBlockRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

// Normalize turns raw model output into a complete per-channel result.
// Structured output is parsed from a fenced or bare JSON object; anything
// unparsable degrades to the raw text on every channel so the caller
// always has something to show. The second return value reports whether
// structured output was recovered.
func Normalize(raw string) (ChannelTexts, bool) {
	trimmed := strings.TrimSpace(raw)

	target := trimmed
	if m := fencedBlockRe.FindStringSubmatch(trimmed); m != nil {
		target = strings.TrimSpace(m[1])
	}

	var parsed ChannelTexts
	if err := json.Unmarshal([]byte(target), &parsed); err == nil && !parsed.empty() {
		return parsed.withDefaults(trimmed), true
	}

	fallback := trimmed
	if fallback == "" {
		fallback = emptyOutputText
	}
	return ChannelTexts{Feed: fallback, Story: fallback, Map: fallback, SMS: fallback}, false
}

func (c ChannelTexts) empty() bool {
	return c.Feed == "" && c.Story == "" && c.Map == "" && c.SMS == ""
}

// withDefaults fills channels the model omitted with the raw output so no
// channel ever ships empty.
func (c ChannelTexts) withDefaults(raw string) ChannelTexts {
	if raw == "" {
		raw = emptyOutputText
	}
	if c.Feed == "" {
		c.Feed = raw
	}
	if c.Story == "" {
		c.Story = raw
	}
	if c.Map == "" {
		c.Map = raw
	}
	if c.SMS == "" {
		c.SMS = raw
	}
	return c
}

package llm

import "testing"

func TestNormalizeBareJSON(t *testing.T) {
	raw := `{"feed":"피드 내용","story":"스토리","map":"지도 답글","sms":"문자"}`

	texts, structured := Normalize(raw)
	if !structured {
		t.Fatal("expected structured parse")
	}
	if texts.Feed != "피드 내용" || texts.Story != "스토리" || texts.Map != "지도 답글" || texts.SMS != "문자" {
		t.Errorf("unexpected texts: %+v", texts)
	}
}

func TestNormalizeFencedJSON(t *testing.T) {
	raw := "다음은 결과입니다.\n```json\n{\"feed\":\"A\",\"story\":\"B\",\"map\":\"C\",\"sms\":\"D\"}\n```"

	texts, structured := Normalize(raw)
	if !structured {
		t.Fatal("expected structured parse from fenced block")
	}
	if texts.Feed != "A" || texts.SMS != "D" {
		t.Errorf("unexpected texts: %+v", texts)
	}
}

func TestNormalizeFencedWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"feed\":\"A\",\"story\":\"B\",\"map\":\"C\",\"sms\":\"D\"}\n```"

	if _, structured := Normalize(raw); !structured {
		t.Error("expected structured parse from plain fence")
	}
}

func TestNormalizePlainTextFallsBack(t *testing.T) {
	raw := "죄송해요, JSON 생성에 실패했어요. 대신 이 문구를 쓰세요."

	texts, structured := Normalize(raw)
	if structured {
		t.Fatal("expected fallback, got structured")
	}
	for _, got := range []string{texts.Feed, texts.Story, texts.Map, texts.SMS} {
		if got != raw {
			t.Errorf("channel = %q, want raw text on every channel", got)
		}
	}
}

func TestNormalizeEmptyOutput(t *testing.T) {
	texts, structured := Normalize("   ")
	if structured {
		t.Fatal("expected fallback for empty output")
	}
	if texts.Feed != emptyOutputText {
		t.Errorf("feed = %q, want placeholder", texts.Feed)
	}
}

func TestNormalizePartialJSONFillsMissingChannels(t *testing.T) {
	raw := `{"feed":"피드만 있음"}`

	texts, structured := Normalize(raw)
	if !structured {
		t.Fatal("expected structured parse")
	}
	if texts.Feed != "피드만 있음" {
		t.Errorf("feed = %q", texts.Feed)
	}
	if texts.Story != raw || texts.Map != raw || texts.SMS != raw {
		t.Errorf("missing channels not filled: %+v", texts)
	}
}

package promo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/chaeni-dev/ICT-INNO/internal/district"
	"github.com/chaeni-dev/ICT-INNO/internal/festival"
	"github.com/chaeni-dev/ICT-INNO/internal/llm"
)

type stubGenerator struct {
	output string
	err    error
	system string
	user   string
}

func (s *stubGenerator) Generate(_ context.Context, system, user string) (string, error) {
	s.system = system
	s.user = user
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func (s *stubGenerator) Provider() llm.Provider { return llm.ProviderSolar }
func (s *stubGenerator) Close() error           { return nil }

type stubWeather struct{ summary string }

func (s stubWeather) Summary(context.Context, string) string { return s.summary }

type stubFestivals struct {
	festivals []festival.Festival
	gotName   district.Name
}

func (s *stubFestivals) ActiveFestivals(d district.Name, _ time.Time) []festival.Festival {
	s.gotName = d
	return s.festivals
}

func fixedFridayNight() time.Time {
	return time.Date(2025, 9, 5, 20, 0, 0, 0, festival.KST)
}

const structuredOutput = `{"feed":"피드","story":"스토리","map":"지도","sms":"문자"}`

func newTestService(gen *stubGenerator, w WeatherSource, f FestivalSource) *Service {
	s := NewService(gen, w, f, nil, nil)
	s.now = fixedFridayNight
	return s
}

func TestGenerateExpertMode(t *testing.T) {
	gen := &stubGenerator{output: structuredOutput}
	festivals := &stubFestivals{festivals: []festival.Festival{{
		Name:       "부산국제영화제",
		District:   district.Haeundae,
		Place:      "영화의전당",
		PeriodText: "2025. 10. 1. ~ 10. 10.",
	}}}
	svc := newTestService(gen, stubWeather{summary: "맑음, 27도"}, festivals)

	resp, err := svc.Generate(context.Background(), Request{
		StoreName:   "해운대횟집",
		Location:    "부산 해운대구 우동",
		Description: "모둠회 이벤트",
	})
	if err != nil {
		t.Fatal(err)
	}

	if resp.Mode != ModeExpert {
		t.Errorf("mode = %q, want EXPERT", resp.Mode)
	}
	if want := "트렌드 반영: 금요일 불금 밤, 맑음, 27도"; resp.ContextSummary != want {
		t.Errorf("contextSummary = %q, want %q", resp.ContextSummary, want)
	}
	if resp.Feed != "피드" || resp.SMS != "문자" {
		t.Errorf("channels = %+v", resp)
	}
	if festivals.gotName != district.Haeundae {
		t.Errorf("festival filter = %q, want 해운대구", festivals.gotName)
	}

	// Prompt carries everything resolved.
	for _, want := range []string{"부산국제영화제", "금요일 불금 밤", "해운대"} {
		if !strings.Contains(gen.system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if !strings.Contains(gen.user, "가게명: 해운대횟집") {
		t.Errorf("user content missing store name: %q", gen.user)
	}

	feed := resp.Results["instagram_feed"]
	if feed.Text != "피드" || len(feed.Hashtags) == 0 {
		t.Errorf("instagram_feed = %+v, want text with insight hashtags", feed)
	}
	if resp.Results["sms"].Text != "문자" {
		t.Errorf("sms result = %+v", resp.Results["sms"])
	}
}

func TestGenerateGeneralModeTrendsOff(t *testing.T) {
	gen := &stubGenerator{output: structuredOutput}
	svc := newTestService(gen, stubWeather{summary: "맑음, 20도"}, &stubFestivals{})

	off := false
	resp, err := svc.Generate(context.Background(), Request{
		StoreName:     "동네식당",
		Location:      "모르는동네 123번지",
		IncludeTrends: &off,
	})
	if err != nil {
		t.Fatal(err)
	}

	if resp.Mode != ModeGeneral {
		t.Errorf("mode = %q, want GENERAL", resp.Mode)
	}
	if want := "지역 모드: 동네 추론 모드"; resp.ContextSummary != want {
		t.Errorf("contextSummary = %q, want %q", resp.ContextSummary, want)
	}
	if strings.Contains(gen.system, "날씨/이슈 반영") {
		t.Error("trends section present with trends off")
	}
	if !strings.Contains(gen.user, "트렌드 반영: 아니오") {
		t.Errorf("user content should mark trends off: %q", gen.user)
	}
}

func TestGenerateExpertModeTrendsOff(t *testing.T) {
	gen := &stubGenerator{output: structuredOutput}
	svc := newTestService(gen, stubWeather{summary: "흐림, 15도"}, &stubFestivals{})

	off := false
	resp, err := svc.Generate(context.Background(), Request{
		Location:      "서면",
		IncludeTrends: &off,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.ContextSummary, "인사이트 적용") {
		t.Errorf("contextSummary = %q, want insight mode summary", resp.ContextSummary)
	}
}

func TestGenerateUnstructuredOutput(t *testing.T) {
	raw := "JSON이 아닌 그냥 문구입니다."
	gen := &stubGenerator{output: raw}
	svc := newTestService(gen, stubWeather{summary: "맑음, 25도"}, &stubFestivals{})

	resp, err := svc.Generate(context.Background(), Request{Location: "광안리"})
	if err != nil {
		t.Fatal(err)
	}

	for _, got := range []string{resp.Feed, resp.Story, resp.Map, resp.SMS} {
		if got != raw {
			t.Errorf("channel = %q, want raw output everywhere", got)
		}
	}
}

func TestGenerateCompletionFailure(t *testing.T) {
	genErr := errors.New("all providers failed")
	gen := &stubGenerator{err: genErr}
	svc := newTestService(gen, stubWeather{summary: "맑음, 25도"}, &stubFestivals{})

	if _, err := svc.Generate(context.Background(), Request{Location: "서면"}); !errors.Is(err, genErr) {
		t.Errorf("err = %v, want generator error", err)
	}
}

func TestGenerateWithoutOptionalSources(t *testing.T) {
	gen := &stubGenerator{output: structuredOutput}
	svc := NewService(gen, nil, nil, nil, nil)
	svc.now = fixedFridayNight

	resp, err := svc.Generate(context.Background(), Request{Location: "서면"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Mode != ModeExpert {
		t.Errorf("mode = %q", resp.Mode)
	}
	if strings.Contains(gen.system, "축제/행사") {
		t.Error("festival section present without a festival source")
	}
}

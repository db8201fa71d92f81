package llm

import (
	"fmt"
	"strings"
)

// FestivalMention is a nearby event surfaced to the model so the copy can
// reference it.
type FestivalMention struct {
	Name   string
	Place  string
	Period string
}

// SystemPromptInput carries everything the system prompt interpolates.
type SystemPromptInput struct {
	// Region is the matched insight key, or the raw location when no
	// insight matched.
	Region         string
	TargetName     string
	Persona        string
	Tone           string
	MarketingPoint string
	Hashtags       []string

	// ContextLine is the day/time/weather line. Empty omits the trends
	// section entirely.
	ContextLine string

	// Festivals lists events currently running near the store.
	Festivals []FestivalMention
}

// BuildSystemPrompt renders the marketing system prompt. The channel
// rules are fixed; the regional insight, live context and festival
// sections vary per request.
func BuildSystemPrompt(in SystemPromptInput) string {
	var b strings.Builder

	b.WriteString("너는 부산/경남 골목상권 마케팅 전문가야. 입력된 가게 정보와 지역 인사이트를 바탕으로 글을 써.\n\n")

	b.WriteString("[사실 기반 작성]\n")
	b.WriteString("- 입력에 없는 정보(주차, 대기 시간, 매장 내부 묘사 등)는 지어내지 마라.\n")
	b.WriteString("- 가게 정보와 아래 인사이트에 적힌 내용만 사용해라.\n\n")

	region := in.Region
	if region == "" {
		region = "미정"
	}
	tone := in.Tone
	if tone == "" {
		tone = "친근한 동네 사장님 톤"
	}

	b.WriteString("[지역 인사이트]\n")
	fmt.Fprintf(&b, "- 지역: %s\n", region)
	fmt.Fprintf(&b, "- 타겟: %s\n", in.TargetName)
	fmt.Fprintf(&b, "- 페르소나: %s\n", in.Persona)
	fmt.Fprintf(&b, "- 톤앤매너: %s\n", tone)
	fmt.Fprintf(&b, "- 마케팅 포인트: %s\n", in.MarketingPoint)
	fmt.Fprintf(&b, "- 추천 해시태그 예시: %s\n", strings.Join(in.Hashtags, ", "))

	b.WriteString(`
[채널별 작성 규칙을 반드시 준수]
1) 인스타그램 피드(feed)
 - 전략: 감성 & 정보, 사진과 어울리는 긴 호흡
 - 지시: 시선을 끄는 감성적 첫 문장, 메뉴/분위기 시각 묘사, 이모지 풍부
 - 해시태그: 지역/메뉴/분위기 태그 10개 이상 필수
2) 인스타그램 스토리(story)
 - 전략: 임팩트 & 유도, 3초 가독성
 - 지시: 2문장 이내, "오늘만/지금 바로" 같은 CTA 포함, 스티커용 짧은 문구
3) 지도 리뷰 답글/소식(map)
 - 전략: 신뢰 & 정보
 - 지시: 정중한 말투(~습니다), 주차/영업시간/길 안내 등 실질 팁 자연스럽게
4) 문자/알림톡(sms)
 - 전략: 친근 & 혜택, 스팸 느낌 금지
 - 지시: 날씨/계절 안부로 시작, 혜택 명확히, "(광고)" 느낌 제거
`)

	if in.ContextLine != "" {
		b.WriteString("\n[오늘 우리 동네 날씨/이슈 반영]\n")
		fmt.Fprintf(&b, "- 지금은 %s.\n", in.ContextLine)
		b.WriteString("- feed와 sms는 이 날씨/요일 정보를 반드시 포함해 작성.\n")
		b.WriteString("- \"비 오는 날엔 파전\", \"불금엔 치킨\"처럼 상황 맞춤 멘트를 섞어라.\n")
	}

	if len(in.Festivals) > 0 {
		b.WriteString("\n[지금 열리는 주변 축제/행사]\n")
		for _, f := range in.Festivals {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", f.Name, f.Place, f.Period)
		}
		b.WriteString("- feed나 story에서 방문객을 가게로 끌어올 수 있게 자연스럽게 언급해라.\n")
		b.WriteString("- 위 목록에 없는 축제나 행사를 지어내지 마라.\n")
	}

	b.WriteString(`
[출력만 순수 JSON으로 반환, 마크다운 금지]
{
  "feed": "내용...",
  "story": "내용...",
  "map": "내용...",
  "sms": "내용..."
}`)

	return strings.TrimSpace(b.String())
}

// UserContentInput carries the store fields the user message interpolates.
type UserContentInput struct {
	StoreName   string
	Location    string
	Description string
	UseTrends   bool
	HasImage    bool
}

// BuildUserContent renders the user message. Missing fields get explicit
// placeholders so the model never sees empty labels.
func BuildUserContent(in UserContentInput) string {
	storeName := in.StoreName
	if storeName == "" {
		storeName = "미정"
	}
	location := in.Location
	if location == "" {
		location = "미정"
	}
	description := in.Description
	if description == "" {
		description = "메뉴 소개 미입력"
	}
	trends := "아니오"
	if in.UseTrends {
		trends = "예"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "가게명: %s\n위치: %s\n메뉴/이벤트: %s\n트렌드 반영: %s", storeName, location, description, trends)
	if in.HasImage {
		b.WriteString("\n(이미지 업로드됨: 모델이 이미지를 직접 읽을 수 없어 텍스트 설명만 참고)")
	}
	return b.String()
}

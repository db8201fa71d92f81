// Package insight maps free-text Busan locations to curated marketing
// persona records. The table is a gazetteer of well-known commercial areas;
// anything it cannot place falls back to a generic neighborhood persona.
package insight

// Tone is a style label the prompt assembler passes to the completion model.
type Tone string

// Tone labels used by the curated spot records.
const (
	ToneEnergetic Tone = "energetic"
	ToneEmotional Tone = "emotional"
	TonePolite    Tone = "polite"
	ToneRetro     Tone = "retro"
	ToneKind      Tone = "kind"
	ToneCalm      Tone = "calm"
	ToneNeighbor  Tone = "neighbor"
)

// SpotInsight is a persona/tone/hashtag bundle for a well-known locality.
// Records are defined once at process start and never mutated.
type SpotInsight struct {
	TargetName     string
	Persona        string
	MarketingPoint string
	Tone           Tone
	Hashtags       []string
}

// FallbackKey is the key of the generic neighborhood record returned when no
// gazetteer entry matches.
const FallbackKey = "기타(동네)"

// Shared records: alias keys reference the same value as their canonical key,
// so alias and canonical lookups are identical by construction.
var (
	seomyeonJeonpo = SpotInsight{
		TargetName:     "MZ 뚜벅이족 & 감성 소비족",
		Persona:        "대중교통을 이용해 골목 맛집과 예쁜 카페를 찾아다니는 20~30대 여성",
		MarketingPoint: "힙한 분위기, 인생샷 스팟, 쇼핑 후 휴식 강조",
		Tone:           ToneEnergetic,
		Hashtags:       []string{"#서면핫플", "#전포카페거리", "#부산여행", "#서면맛집"},
	}

	gwangalli = SpotInsight{
		TargetName:     "별빛 해양 레저족",
		Persona:        "저녁 시간대 드론쇼와 야경을 즐기러 오는 20대 커플 및 수도권 여행객",
		MarketingPoint: "광안대교 뷰, 낭만적인 밤 분위기, 데이트 코스 강조",
		Tone:           ToneEmotional,
		Hashtags:       []string{"#광안대교뷰", "#부산야경", "#광안리데이트", "#드론쇼"},
	}

	haeundae = SpotInsight{
		TargetName:     "프리미엄 가족 나들이객",
		Persona:        "쾌적한 환경과 고급스러운 미식을 즐기는 고소득 3040 가족 단위 방문객",
		MarketingPoint: "가족이 함께하기 좋은, 주차 편리, 고급스러운 맛과 서비스 강조",
		Tone:           TonePolite,
		Hashtags:       []string{"#해운대호캉스", "#가족외식", "#프리미엄", "#부산여행코스"},
	}

	nampodong = SpotInsight{
		TargetName:     "트레킹족 & 레트로 미식가",
		Persona:        "부산 고유의 노포 맛집과 시장의 정취를 즐기는 5060 중장년층 및 외국인",
		MarketingPoint: "오래된 전통, 푸짐한 양, 부산 사람들의 정 강조",
		Tone:           ToneRetro,
		Hashtags:       []string{"#부산노포", "#자갈치시장", "#국제시장", "#부산찐맛집"},
	}

	gijang = SpotInsight{
		TargetName:     "힐링 가족 여행객",
		Persona:        "자차로 이동하며 롯데월드/아울렛 방문 후 맛있는 식사를 찾는 유초등 자녀 동반 가족",
		MarketingPoint: "아이 동반 환영(키즈존), 넓은 주차장, 온 가족 추천 메뉴 강조",
		Tone:           ToneKind,
		Hashtags:       []string{"#기장맛집", "#부산아이랑", "#오시리아관광단지", "#주말나들이"},
	}

	yeongdo = SpotInsight{
		TargetName:     "산책/뷰 감성족 & 로컬 여행객",
		Persona:        "흰여울 문화마을 산책과 카페 투어를 즐기는 20~30대 여행객",
		MarketingPoint: "바다 뷰, 골목 감성, 사진 스팟 강조",
		Tone:           ToneCalm,
		Hashtags:       []string{"#영도카페", "#흰여울문화마을", "#영도여행", "#바다뷰맛집"},
	}

	neighborhood = SpotInsight{
		TargetName:     "동네 이웃 & 퇴근길 직장인",
		Persona:        "퇴근길에, 혹은 집 근처에서 편안하게 들르고 싶은 동네 주민",
		MarketingPoint: "날씨/요일 공감 멘트, 퇴근길 힐링, 동네 아지트",
		Tone:           ToneNeighbor,
		Hashtags:       []string{"#동네맛집", "#숨은맛집", "#퇴근길", "#단골환영"},
	}
)

type entry struct {
	key     string
	insight SpotInsight
}

// spots is scanned in order and the first match wins, so longer/more specific
// keys must precede the bare district aliases that contain them. Do not sort.
var spots = []entry{
	{"서면/전포", seomyeonJeonpo},
	{"부산진구", seomyeonJeonpo}, // alias for 서면/전포
	{"광안리", gwangalli},
	{"수영구", gwangalli}, // alias for 광안리
	{"해운대", haeundae},
	{"해운대구", haeundae}, // alias for 해운대
	{"남포동(자갈치/국제시장)", nampodong},
	{"중구", nampodong}, // alias for 남포동
	{"기장(오시리아)", gijang},
	{"기장군", gijang}, // alias for 기장
	{"영도(흰여울)", yeongdo},
	{"영도구", yeongdo}, // alias for 영도
	{FallbackKey, neighborhood},
}

// Keys returns the gazetteer keys in table order. Used by tests to pin the
// first-match ordering and by the web layer to expose selectable regions.
func Keys() []string {
	keys := make([]string, 0, len(spots))
	for _, e := range spots {
		keys = append(keys, e.key)
	}
	return keys
}

// Fallback returns the generic neighborhood record.
func Fallback() SpotInsight {
	return neighborhood
}

package district

import "testing"

func TestResolveKeyword(t *testing.T) {
	cases := []struct {
		input string
		want  Name
	}{
		{"서면", Busanjin},
		{"전포 카페거리", Busanjin},
		{"부산 해운대구 우동 123-4", Haeundae},
		{"광안리 해변 근처 술집", Suyeong},
		{"남포동 먹자골목", Jung},
		{"기장 연화리", Gijang},
		{"영도 흰여울문화마을", Yeongdo},
		{"센텀시티 신세계백화점", Haeundae},
		{"부산대 앞", Geumjeong},
		{"다대포해수욕장", Saha},
		{"사직야구장", Dongnae},
		{"경성대 부경대 사이", Nam},
		{"명지국제신도시", Gangseo},
		{"덕천역 3번 출구", Buk},
		{"연산동 토곡", Yeonje},
		{"사상터미널", Sasang},
		{"송도해수욕장 포장마차", Seo},
		{"범일동 시장", Dong},
	}

	for _, c := range cases {
		got, ok := Resolve(c.input)
		if !ok {
			t.Errorf("Resolve(%q): no match, want %s", c.input, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("Resolve(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestResolveSuffixFallback(t *testing.T) {
	// Unknown districts that still end in 구/군 pass through unchanged.
	cases := []struct {
		input string
		want  Name
	}{
		{"중랑구", Name("중랑구")},
		{"  달서구  ", Name("달서구")},
		{"함안군", Name("함안군")},
		// Address-like inputs ending in an unknown 구/군 also pass
		// through as a whole.
		{"창원 의창구", Name("창원 의창구")},
		{"경남 거제시 일운군", Name("경남 거제시 일운군")},
	}

	for _, c := range cases {
		got, ok := Resolve(c.input)
		if !ok {
			t.Errorf("Resolve(%q): no match, want passthrough %s", c.input, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("Resolve(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestResolveKnownSuffixBeatsFallback(t *testing.T) {
	// A real district name hits the keyword table, not the suffix rule.
	got, ok := Resolve("해운대구")
	if !ok || got != Haeundae {
		t.Fatalf("Resolve(해운대구) = %s, %v; want %s, true", got, ok, Haeundae)
	}
}

func TestResolveNoMatch(t *testing.T) {
	for _, input := range []string{"", "   ", "서울 강남역", "hello world", "맛집 추천"} {
		if got, ok := Resolve(input); ok {
			t.Errorf("Resolve(%q) = %s, want no match", input, got)
		}
	}
}

func TestResolveCaseAndSpacing(t *testing.T) {
	got, ok := Resolve("  부산 광안리  ")
	if !ok || got != Suyeong {
		t.Fatalf("Resolve with padding = %s, %v; want %s, true", got, ok, Suyeong)
	}
}

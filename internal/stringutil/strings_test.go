package stringutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Trims whitespace", "  서면  ", "서면"},
		{"Lowercases ASCII", "Busan", "busan"},
		{"Empty string", "", ""},
		{"Mixed", " 해운대 Beach ", "해운대 beach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		substr string
		want   bool
	}{
		{"Korean substring", "부산 해운대구 우동", "해운대구", true},
		{"Case folded", "BUSAN station", "busan", true},
		{"Not contained", "광안리", "해운대", false},
		{"Empty substring", "전포", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFold(tt.s, tt.substr); got != tt.want {
				t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
			}
		})
	}
}

func TestStripToPlaceName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Parentheses removed", "기장(오시리아)", "기장오시리아"},
		{"Punctuation removed", "남포동!!", "남포동"},
		{"Spaces kept", "부산 서면", "부산 서면"},
		{"ASCII kept", "Busan 2", "Busan 2"},
		{"Only punctuation", "~!@#", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripToPlaceName(tt.input); got != tt.want {
				t.Errorf("StripToPlaceName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

package district

// keywordEntry pairs a neighborhood/landmark keyword with its containing
// district.
type keywordEntry struct {
	keyword  string
	district Name
}

// keywords is scanned in order and the first keyword contained in the input
// wins. Entries are grouped by district with the district's own name first;
// where a shorter keyword is a substring of a longer one mapping elsewhere,
// the longer one must come earlier. Do not sort.
var keywords = []keywordEntry{
	// 부산진구
	{"부산진구", Busanjin},
	{"전포카페거리", Busanjin},
	{"서면", Busanjin},
	{"전포", Busanjin},
	{"부전", Busanjin},
	{"양정", Busanjin},
	{"범천", Busanjin},
	{"가야", Busanjin},
	{"개금", Busanjin},
	{"당감", Busanjin},
	{"초읍", Busanjin},
	{"연지", Busanjin},
	{"부암", Busanjin},
	{"시민공원", Busanjin},

	// 수영구
	{"수영구", Suyeong},
	{"광안대교", Suyeong},
	{"광안리", Suyeong},
	{"광안", Suyeong},
	{"민락", Suyeong},
	{"남천", Suyeong},
	{"망미", Suyeong},
	{"금련산", Suyeong},
	{"수영", Suyeong},

	// 해운대구
	{"해운대구", Haeundae},
	{"센텀시티", Haeundae},
	{"마린시티", Haeundae},
	{"달맞이길", Haeundae},
	{"해운대", Haeundae},
	{"센텀", Haeundae},
	{"송정", Haeundae},
	{"재송", Haeundae},
	{"반여", Haeundae},
	{"반송", Haeundae},
	{"좌동", Haeundae},
	{"중동", Haeundae},
	{"우동", Haeundae},
	{"장산", Haeundae},
	{"미포", Haeundae},
	{"청사포", Haeundae},
	{"동백섬", Haeundae},

	// 중구
	{"국제시장", Jung},
	{"부평깡통시장", Jung},
	{"남포동", Jung},
	{"자갈치", Jung},
	{"광복동", Jung},
	{"중앙동", Jung},
	{"동광동", Jung},
	{"보수동", Jung},
	{"부평동", Jung},
	{"영주동", Jung},
	{"용두산", Jung},
	{"남포", Jung},

	// 기장군
	{"기장군", Gijang},
	{"오시리아", Gijang},
	{"기장", Gijang},
	{"일광", Gijang},
	{"정관", Gijang},
	{"장안", Gijang},
	{"철마", Gijang},
	{"죽성", Gijang},
	{"대변", Gijang},
	{"연화리", Gijang},
	{"임랑", Gijang},
	{"아난티", Gijang},

	// 영도구
	{"영도구", Yeongdo},
	{"흰여울", Yeongdo},
	{"태종대", Yeongdo},
	{"영도", Yeongdo},
	{"동삼", Yeongdo},
	{"남항동", Yeongdo},
	{"영선동", Yeongdo},
	{"봉래동", Yeongdo},
	{"청학", Yeongdo},
	{"절영", Yeongdo},

	// 동래구
	{"동래구", Dongnae},
	{"온천장", Dongnae},
	{"동래", Dongnae},
	{"명륜", Dongnae},
	{"사직", Dongnae},
	{"안락", Dongnae},
	{"수안", Dongnae},
	{"복천", Dongnae},
	{"충렬사", Dongnae},

	// 남구
	{"경성대", Nam},
	{"부경대", Nam},
	{"이기대", Nam},
	{"오륙도", Nam},
	{"대연", Nam},
	{"용호", Nam},
	{"문현", Nam},
	{"감만", Nam},
	{"우암", Nam},
	{"유엔공원", Nam},

	// 북구
	{"북구", Buk},
	{"덕천", Buk},
	{"화명", Buk},
	{"구포", Buk},
	{"만덕", Buk},
	{"금곡", Buk},

	// 사하구
	{"사하구", Saha},
	{"감천문화마을", Saha},
	{"다대포", Saha},
	{"을숙도", Saha},
	{"하단", Saha},
	{"괴정", Saha},
	{"당리", Saha},
	{"장림", Saha},
	{"신평", Saha},
	{"감천", Saha},

	// 금정구
	{"금정구", Geumjeong},
	{"부산대", Geumjeong},
	{"범어사", Geumjeong},
	{"금정산", Geumjeong},
	{"장전", Geumjeong},
	{"구서", Geumjeong},
	{"남산동", Geumjeong},
	{"노포", Geumjeong},
	{"서동", Geumjeong},

	// 강서구
	{"강서구", Gangseo},
	{"에코델타", Gangseo},
	{"가덕도", Gangseo},
	{"명지", Gangseo},
	{"녹산", Gangseo},
	{"대저", Gangseo},
	{"신호", Gangseo},
	{"지사", Gangseo},

	// 연제구
	{"연제구", Yeonje},
	{"연산", Yeonje},
	{"거제동", Yeonje},
	{"시청", Yeonje},
	{"토곡", Yeonje},

	// 사상구
	{"사상구", Sasang},
	{"삼락생태공원", Sasang},
	{"사상", Sasang},
	{"괘법", Sasang},
	{"감전", Sasang},
	{"주례", Sasang},
	{"학장", Sasang},
	{"엄궁", Sasang},
	{"덕포", Sasang},
	{"모라", Sasang},
	{"삼락", Sasang},

	// 서구
	{"서구", Seo},
	{"송도해수욕장", Seo},
	{"송도", Seo},
	{"암남", Seo},
	{"동대신", Seo},
	{"서대신", Seo},
	{"충무동", Seo},
	{"남부민", Seo},

	// 동구
	{"초량", Dong},
	{"부산역", Dong},
	{"차이나타운", Dong},
	{"이바구길", Dong},
	{"수정동", Dong},
	{"좌천", Dong},
	{"범일", Dong},
}

// Keywords returns the number of keyword entries. Exposed for tests.
func Keywords() int {
	return len(keywords)
}

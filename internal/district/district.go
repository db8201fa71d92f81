// Package district resolves free-text Busan locations and addresses to a
// canonical administrative district (구/군). The district is the granularity
// festivals are matched at, so resolution failure is never an error: callers
// treat an empty result as "apply no district filter".
package district

// Name is one of Busan's administrative districts. Values are produced by
// Resolve and never constructed ad hoc elsewhere.
type Name string

// The sixteen districts of Busan.
const (
	Jung      Name = "중구"
	Seo       Name = "서구"
	Dong      Name = "동구"
	Yeongdo   Name = "영도구"
	Busanjin  Name = "부산진구"
	Dongnae   Name = "동래구"
	Nam       Name = "남구"
	Buk       Name = "북구"
	Haeundae  Name = "해운대구"
	Saha      Name = "사하구"
	Geumjeong Name = "금정구"
	Gangseo   Name = "강서구"
	Yeonje    Name = "연제구"
	Suyeong   Name = "수영구"
	Sasang    Name = "사상구"
	Gijang    Name = "기장군"
)

// All lists every district in a stable order.
var All = []Name{
	Jung, Seo, Dong, Yeongdo, Busanjin, Dongnae, Nam, Buk,
	Haeundae, Saha, Geumjeong, Gangseo, Yeonje, Suyeong, Sasang, Gijang,
}

func (n Name) String() string {
	return string(n)
}

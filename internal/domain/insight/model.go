package insight

import "github.com/yanqian/astro-insight/internal/domain/zodiac"

// Request carries the birth details accepted by both transports.
type Request struct {
	Name       string `json:"name" binding:"required"`
	BirthDate  string `json:"birth_date" binding:"required"`
	BirthTime  string `json:"birth_time" binding:"required"`
	BirthPlace string `json:"birth_place" binding:"required"`
	Language   string `json:"language,omitempty"`
}

// Response is returned verbatim to callers and stored in the result cache.
type Response struct {
	Zodiac       string `json:"zodiac"`
	Insight      string `json:"insight"`
	Language     string `json:"language"`
	Element      string `json:"element,omitempty"`
	RulingPlanet string `json:"ruling_planet,omitempty"`
}

func newResponse(info zodiac.Info, text, language string) Response {
	return Response{
		Zodiac:       info.Sign,
		Insight:      text,
		Language:     language,
		Element:      info.Element,
		RulingPlanet: info.RulingPlanet,
	}
}

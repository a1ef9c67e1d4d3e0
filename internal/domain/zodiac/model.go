package zodiac

// UnknownSign is reported when no configured range contains a date.
const UnknownSign = "Unknown"

// Info is the sun-sign resolved for a birth date. Element and RulingPlanet
// are empty when the sign is unknown.
type Info struct {
	Sign         string `json:"sign"`
	Element      string `json:"element,omitempty"`
	RulingPlanet string `json:"ruling_planet,omitempty"`
}

// Known reports whether the sign resolved to one of the twelve zodiac signs.
func (i Info) Known() bool {
	return i.Sign != "" && i.Sign != UnknownSign
}

// DailyContext carries the static traits and theme used to flavour an insight.
type DailyContext struct {
	Traits     []string `json:"traits"`
	TodayTheme string   `json:"today_theme"`
}

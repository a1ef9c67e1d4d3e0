package zodiac

import "time"

type monthDay struct {
	month time.Month
	day   int
}

type signRange struct {
	sign  string
	start monthDay
	end   monthDay
}

type signMeta struct {
	element string
	planet  string
}

// Capricorn wraps the year end so it is split across two entries.
var signRanges = []signRange{
	{sign: "Capricorn", start: monthDay{time.December, 22}, end: monthDay{time.December, 31}},
	{sign: "Capricorn", start: monthDay{time.January, 1}, end: monthDay{time.January, 19}},
	{sign: "Aquarius", start: monthDay{time.January, 20}, end: monthDay{time.February, 18}},
	{sign: "Pisces", start: monthDay{time.February, 19}, end: monthDay{time.March, 20}},
	{sign: "Aries", start: monthDay{time.March, 21}, end: monthDay{time.April, 19}},
	{sign: "Taurus", start: monthDay{time.April, 20}, end: monthDay{time.May, 20}},
	{sign: "Gemini", start: monthDay{time.May, 21}, end: monthDay{time.June, 20}},
	{sign: "Cancer", start: monthDay{time.June, 21}, end: monthDay{time.July, 22}},
	{sign: "Leo", start: monthDay{time.July, 23}, end: monthDay{time.August, 22}},
	{sign: "Virgo", start: monthDay{time.August, 23}, end: monthDay{time.September, 22}},
	{sign: "Libra", start: monthDay{time.September, 23}, end: monthDay{time.October, 22}},
	{sign: "Scorpio", start: monthDay{time.October, 23}, end: monthDay{time.November, 21}},
	{sign: "Sagittarius", start: monthDay{time.November, 22}, end: monthDay{time.December, 21}},
}

var signMetadata = map[string]signMeta{
	"Aries":       {element: "Fire", planet: "Mars"},
	"Taurus":      {element: "Earth", planet: "Venus"},
	"Gemini":      {element: "Air", planet: "Mercury"},
	"Cancer":      {element: "Water", planet: "Moon"},
	"Leo":         {element: "Fire", planet: "Sun"},
	"Virgo":       {element: "Earth", planet: "Mercury"},
	"Libra":       {element: "Air", planet: "Venus"},
	"Scorpio":     {element: "Water", planet: "Mars"},
	"Sagittarius": {element: "Fire", planet: "Jupiter"},
	"Capricorn":   {element: "Earth", planet: "Saturn"},
	"Aquarius":    {element: "Air", planet: "Saturn"},
	"Pisces":      {element: "Water", planet: "Jupiter"},
}

var orderedSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Signs lists the twelve zodiac signs starting from Aries.
func Signs() []string {
	out := make([]string, len(orderedSigns))
	copy(out, orderedSigns)
	return out
}

// Resolver maps calendar dates to sun-signs using fixed date ranges.
type Resolver struct {
	ranges   []signRange
	metadata map[string]signMeta
}

// NewResolver builds a resolver over the western sun-sign table.
func NewResolver() *Resolver {
	return &Resolver{ranges: signRanges, metadata: signMetadata}
}

// ResolveDate resolves the sign for the calendar date of t.
func (r *Resolver) ResolveDate(t time.Time) Info {
	return r.Resolve(t.Month(), t.Day())
}

// Resolve returns the first range containing (month, day). The caller is
// expected to have validated the date already.
func (r *Resolver) Resolve(month time.Month, day int) Info {
	for _, candidate := range r.ranges {
		if !candidate.contains(month, day) {
			continue
		}
		meta := r.metadata[candidate.sign]
		return Info{
			Sign:         candidate.sign,
			Element:      meta.element,
			RulingPlanet: meta.planet,
		}
	}
	return Info{Sign: UnknownSign}
}

func (sr signRange) contains(month time.Month, day int) bool {
	start, end := sr.start, sr.end
	if start.month == end.month {
		return month == start.month && day >= start.day && day <= end.day
	}
	if start.month < end.month {
		switch {
		case month > start.month && month < end.month:
			return true
		case month == start.month && day >= start.day:
			return true
		case month == end.month && day <= end.day:
			return true
		}
	}
	return false
}

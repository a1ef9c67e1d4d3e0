package zodiac

var dailyContexts = map[string]DailyContext{
	"Aries": {
		Traits:     []string{"bold", "energetic", "decisive"},
		TodayTheme: "taking initiative and starting fresh tasks",
	},
	"Taurus": {
		Traits:     []string{"grounded", "patient", "reliable"},
		TodayTheme: "stability, comfort, and steady progress",
	},
	"Gemini": {
		Traits:     []string{"curious", "adaptable", "communicative"},
		TodayTheme: "conversations, learning, and quick thinking",
	},
	"Cancer": {
		Traits:     []string{"empathetic", "intuitive", "protective"},
		TodayTheme: "emotional connection and home matters",
	},
	"Leo": {
		Traits:     []string{"confident", "warm", "charismatic"},
		TodayTheme: "leadership, visibility, and self-expression",
	},
	"Virgo": {
		Traits:     []string{"detail-oriented", "practical", "helpful"},
		TodayTheme: "organization, planning, and service",
	},
	"Libra": {
		Traits:     []string{"diplomatic", "graceful", "fair-minded"},
		TodayTheme: "balance, relationships, and aesthetics",
	},
	"Scorpio": {
		Traits:     []string{"intense", "focused", "transformative"},
		TodayTheme: "deep focus and emotional transformation",
	},
	"Sagittarius": {
		Traits:     []string{"optimistic", "adventurous", "philosophical"},
		TodayTheme: "exploration, learning, and big-picture thinking",
	},
	"Capricorn": {
		Traits:     []string{"disciplined", "ambitious", "responsible"},
		TodayTheme: "long-term goals and structured effort",
	},
	"Aquarius": {
		Traits:     []string{"innovative", "independent", "humanitarian"},
		TodayTheme: "original ideas and community focus",
	},
	"Pisces": {
		Traits:     []string{"compassionate", "imaginative", "sensitive"},
		TodayTheme: "intuition, creativity, and emotional depth",
	},
}

var defaultContext = DailyContext{
	Traits:     []string{"balanced", "thoughtful"},
	TodayTheme: "staying present and calm",
}

// ContextTable serves the static daily context for each sign.
type ContextTable struct {
	entries  map[string]DailyContext
	fallback DailyContext
}

// NewContextTable builds the table with one entry per sign plus a default.
func NewContextTable() *ContextTable {
	return &ContextTable{entries: dailyContexts, fallback: defaultContext}
}

// Lookup returns the context for sign, or the default for unrecognised names.
func (t *ContextTable) Lookup(sign string) DailyContext {
	entry, ok := t.entries[sign]
	if !ok {
		entry = t.fallback
	}
	return DailyContext{
		Traits:     append([]string(nil), entry.Traits...),
		TodayTheme: entry.TodayTheme,
	}
}

// Default exposes the fallback context.
func (t *ContextTable) Default() DailyContext {
	return t.Lookup("")
}

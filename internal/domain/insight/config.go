package insight

import "time"

// DefaultCacheTTL keeps an insight for a day.
const DefaultCacheTTL = 24 * time.Hour

// Config holds runtime knobs for the insight pipeline.
type Config struct {
	CacheTTL        time.Duration
	DefaultLanguage string
}

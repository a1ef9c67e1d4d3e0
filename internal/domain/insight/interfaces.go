package insight

import (
	"context"
	"time"

	"github.com/yanqian/astro-insight/internal/domain/zodiac"
)

// Cache stores serialized responses with a time-to-live.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Generator turns a prompt into an insight sentence.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Translator renders text in the requested language.
type Translator interface {
	Translate(ctx context.Context, text, language string) (string, error)
}

// Embedder produces embeddings for free form text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Composer builds the final insight sentence for a resolved sign.
type Composer interface {
	Compose(ctx context.Context, name string, info zodiac.Info, daily zodiac.DailyContext, language string) (string, error)
}

// SignResolver maps a birth date to its sun-sign.
type SignResolver interface {
	ResolveDate(t time.Time) zodiac.Info
}

// ContextSource supplies the daily context for a sign.
type ContextSource interface {
	Lookup(sign string) zodiac.DailyContext
}

var (
	_ SignResolver  = (*zodiac.Resolver)(nil)
	_ ContextSource = (*zodiac.ContextTable)(nil)
)

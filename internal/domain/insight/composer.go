package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yanqian/astro-insight/internal/domain/zodiac"
	apperrors "github.com/yanqian/astro-insight/pkg/errors"
)

const defaultTheme = "general balance and reflection"

type composer struct {
	generator  Generator
	translator Translator
	embedder   Embedder
	logger     *slog.Logger
}

// NewComposer assembles a composer from independently replaceable backends.
func NewComposer(generator Generator, translator Translator, embedder Embedder, logger *slog.Logger) Composer {
	return &composer{
		generator:  generator,
		translator: translator,
		embedder:   embedder,
		logger:     logger.With("component", "insight.composer"),
	}
}

func (c *composer) Compose(ctx context.Context, name string, info zodiac.Info, daily zodiac.DailyContext, language string) (string, error) {
	prompt := buildPrompt(name, info, daily)

	if c.embedder != nil {
		vectors, err := c.embedder.Embed(ctx, []string{prompt})
		if err != nil {
			return "", apperrors.Wrap(apperrors.CodeInsight, "prompt embedding failed", err)
		}
		if len(vectors) > 0 {
			c.logger.Debug("prompt embedded", "sign", info.Sign, "dims", len(vectors[0]))
		}
	}

	base, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInsight, "insight generation failed", err)
	}
	base = strings.TrimSpace(base)
	if base == "" {
		return "", apperrors.Wrap(apperrors.CodeInsight, "insight generation returned empty text", nil)
	}

	text, err := c.translator.Translate(ctx, base, language)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInsight, "insight translation failed", err)
	}
	return text, nil
}

func buildPrompt(name string, info zodiac.Info, daily zodiac.DailyContext) string {
	sign := firstNonEmpty(info.Sign, zodiac.UnknownSign)
	element := firstNonEmpty(info.Element, "Unknown element")
	planet := firstNonEmpty(info.RulingPlanet, "Unknown planet")
	theme := firstNonEmpty(daily.TodayTheme, defaultTheme)

	var b strings.Builder
	b.WriteString("You are an expert astrologer generating a daily guidance.\n\n")
	fmt.Fprintf(&b, "User name: %s\n", name)
	fmt.Fprintf(&b, "Zodiac sign: %s\n", sign)
	fmt.Fprintf(&b, "Element: %s\n", element)
	fmt.Fprintf(&b, "Ruling planet: %s\n", planet)
	fmt.Fprintf(&b, "Core traits: %s\n", strings.Join(daily.Traits, ", "))
	fmt.Fprintf(&b, "Today's theme: %s\n\n", theme)
	b.WriteString("Write a short, friendly, realistic daily insight in SECOND person (use 'you'). ")
	b.WriteString("Keep it 1–2 sentences, positive but not overly dramatic.")
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

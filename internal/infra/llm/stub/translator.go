package stub

import (
	"context"

	"github.com/yanqian/astro-insight/internal/domain/insight"
)

// HindiPrefix introduces the untranslated English insight for Hindi callers.
const HindiPrefix = "यह एक सामान्य मार्गदर्शन है: "

// Translator prefixes Hindi output and passes every other language through.
type Translator struct {
	prefixes map[string]string
}

// NewTranslator constructs the translator.
func NewTranslator() *Translator {
	return &Translator{prefixes: map[string]string{"hi": HindiPrefix}}
}

// Translate implements insight.Translator.
func (t *Translator) Translate(_ context.Context, text, language string) (string, error) {
	prefix, ok := t.prefixes[language]
	if !ok {
		return text, nil
	}
	return prefix + text, nil
}

var _ insight.Translator = (*Translator)(nil)

package stub

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratorIgnoresPrompt(t *testing.T) {
	gen := NewGenerator()
	first, err := gen.Generate(context.Background(), "prompt one")
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), "a completely different prompt")
	require.NoError(t, err)

	require.Equal(t, BaseInsight, first)
	require.Equal(t, first, second)
}

func TestTranslator(t *testing.T) {
	tr := NewTranslator()
	ctx := context.Background()

	hi, err := tr.Translate(ctx, "hello", "hi")
	require.NoError(t, err)
	require.Equal(t, "यह एक सामान्य मार्गदर्शन है: hello", hi)

	for _, lang := range []string{"en", "fr", "", "HI"} {
		out, err := tr.Translate(ctx, "hello", lang)
		require.NoError(t, err)
		require.Equal(t, "hello", out, "language %q", lang)
	}
}

func TestEmbedderDerivesFromLength(t *testing.T) {
	emb := NewEmbedder(0)
	vectors, err := emb.Embed(context.Background(), []string{"abcdefghij", "", strings.Repeat("é", 3)})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	// len 10 -> base 3
	require.Equal(t, []float32{3, 4, 0, 1, 2, 3, 4, 0}, vectors[0])
	require.Equal(t, []float32{0, 1, 2, 3, 4, 0, 1, 2}, vectors[1])
	// counted in runes, not bytes
	require.Equal(t, []float32{3, 4, 0, 1, 2, 3, 4, 0}, vectors[2])
}

func TestEmbedderCustomDimension(t *testing.T) {
	vectors, err := NewEmbedder(3).Embed(context.Background(), []string{"x"})
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2, 3}, vectors[0])
}

package stub

import (
	"context"
	"unicode/utf8"

	"github.com/yanqian/astro-insight/internal/domain/insight"
)

// Embedder avoids network calls by deriving a vector from the text length.
type Embedder struct {
	dim int
}

// NewEmbedder constructs the embedder.
func NewEmbedder(dim int) *Embedder {
	if dim <= 0 {
		dim = 8
	}
	return &Embedder{dim: dim}
}

// Embed converts each text into a deterministic vector.
func (e *Embedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		base := utf8.RuneCountInString(text) % 7
		vector := make([]float32, e.dim)
		for j := range vector {
			vector[j] = float32((base + j) % 5)
		}
		vectors[i] = vector
	}
	return vectors, nil
}

var _ insight.Embedder = (*Embedder)(nil)

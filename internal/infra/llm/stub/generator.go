package stub

import (
	"context"

	"github.com/yanqian/astro-insight/internal/domain/insight"
)

// BaseInsight is returned for every prompt until a generative backend is plugged in.
const BaseInsight = "Today, your natural strengths will help you navigate unexpected changes " +
	"with calm and clarity. Trust your instincts, be honest in your conversations, " +
	"and avoid wasting energy on things you cannot control."

// Generator ignores the prompt and answers with BaseInsight.
type Generator struct{}

// NewGenerator constructs the generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate implements insight.Generator.
func (g *Generator) Generate(_ context.Context, _ string) (string, error) {
	return BaseInsight, nil
}

var _ insight.Generator = (*Generator)(nil)

package bootstrap

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/yanqian/astro-insight/internal/domain/insight"
	"github.com/yanqian/astro-insight/internal/domain/zodiac"
	"github.com/yanqian/astro-insight/internal/infra/config"
	"github.com/yanqian/astro-insight/internal/infra/insightcache"
	"github.com/yanqian/astro-insight/internal/infra/llm/stub"
)

// InsightSet provides insight.Service and everything behind it.
var InsightSet = wire.NewSet(
	ProvideInsightConfig,
	ProvideEmbedder,
	ProvideResultCache,
	zodiac.NewResolver,
	zodiac.NewContextTable,
	stub.NewGenerator,
	stub.NewTranslator,
	insight.NewComposer,
	insight.NewService,
	wire.Bind(new(insight.SignResolver), new(*zodiac.Resolver)),
	wire.Bind(new(insight.ContextSource), new(*zodiac.ContextTable)),
	wire.Bind(new(insight.Generator), new(*stub.Generator)),
	wire.Bind(new(insight.Translator), new(*stub.Translator)),
	wire.Bind(new(insight.Embedder), new(*stub.Embedder)),
	wire.Bind(new(insight.Cache), new(*insightcache.MemoryCache)),
)

// ProvideInsightConfig maps file/env configuration onto the domain config.
func ProvideInsightConfig(cfg *config.Config) insight.Config {
	return insight.Config{
		CacheTTL:        cfg.Insight.CacheTTL,
		DefaultLanguage: cfg.Insight.DefaultLanguage,
	}
}

// ProvideEmbedder sizes the placeholder embedder.
func ProvideEmbedder(cfg *config.Config) *stub.Embedder {
	return stub.NewEmbedder(cfg.Insight.EmbeddingDims)
}

// ProvideResultCache builds the process-local result cache.
func ProvideResultCache(logger *slog.Logger) *insightcache.MemoryCache {
	logger.Debug("insight memory cache enabled", "component", "bootstrap")
	return insightcache.NewMemoryCache()
}

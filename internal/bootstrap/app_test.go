package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-insight/internal/domain/insight"
	"github.com/yanqian/astro-insight/internal/domain/zodiac"
	"github.com/yanqian/astro-insight/internal/infra/config"
	"github.com/yanqian/astro-insight/internal/infra/llm/stub"
)

func TestAppRunStopsOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	cfg := config.Default()
	cfg.HTTP.Address = addr
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestProviders(t *testing.T) {
	cfg := config.Default()
	cfg.Insight.EmbeddingDims = 4
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	insightCfg := ProvideInsightConfig(cfg)
	require.Equal(t, 24*time.Hour, insightCfg.CacheTTL)
	require.Equal(t, "en", insightCfg.DefaultLanguage)

	vectors, err := ProvideEmbedder(cfg).Embed(context.Background(), []string{"abc"})
	require.NoError(t, err)
	require.Len(t, vectors[0], 4)

	composer := insight.NewComposer(stub.NewGenerator(), stub.NewTranslator(), ProvideEmbedder(cfg), logger)
	svc := insight.NewService(insightCfg, zodiac.NewResolver(), zodiac.NewContextTable(), composer, ProvideResultCache(logger), logger)
	resp, err := svc.Predict(context.Background(), insight.Request{Name: "A", BirthDate: "2000-01-20", BirthTime: "08:00", BirthPlace: "Pune"})
	require.NoError(t, err)
	require.Equal(t, "Aquarius", resp.Zodiac)
}

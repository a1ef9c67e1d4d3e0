//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/astro-insight/internal/bootstrap"
	"github.com/yanqian/astro-insight/internal/infra/config"
	httpiface "github.com/yanqian/astro-insight/internal/interface/http"
	"github.com/yanqian/astro-insight/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		bootstrap.InsightSet,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

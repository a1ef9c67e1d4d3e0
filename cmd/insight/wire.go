//go:build wireinject
// +build wireinject

package main

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/yanqian/astro-insight/internal/bootstrap"
	"github.com/yanqian/astro-insight/internal/infra/config"
)

func initializeCLI(logger *slog.Logger) (*cli, error) {
	wire.Build(
		config.Load,
		bootstrap.InsightSet,
		newCLI,
	)
	return nil, nil
}

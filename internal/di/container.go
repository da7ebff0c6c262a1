package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/commentguard/commentguard/internal/adapters/cache"
	"github.com/commentguard/commentguard/internal/adapters/httpapi"
	"github.com/commentguard/commentguard/internal/config"
	"github.com/commentguard/commentguard/internal/core"
	"github.com/commentguard/commentguard/internal/factory"
	"github.com/commentguard/commentguard/internal/logging"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewProviderFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewParserFactory); err != nil {
		return nil, err
	}

	// Register provider client
	if err := container.Provide(func(f *factory.ProviderFactory) (core.Provider, error) {
		return f.CreateProvider()
	}); err != nil {
		return nil, err
	}

	// Register response parser
	if err := container.Provide(func(f *factory.ParserFactory) (core.ResponseParser, error) {
		return f.CreateParser()
	}); err != nil {
		return nil, err
	}

	// Register cache tiers
	if err := container.Provide(func(logger *zap.Logger) core.ResultCache {
		return cache.NewResultCache(logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(logger *zap.Logger) core.KeywordIndex {
		return cache.NewKeywordIndex(logger)
	}); err != nil {
		return nil, err
	}

	// Register concurrency limit
	if err := container.Provide(func(cfg *config.Config) int64 {
		return int64(cfg.GetLLM().MaxConcurrent)
	}); err != nil {
		return nil, err
	}

	// Register classifier service
	if err := container.Provide(core.NewClassifierService); err != nil {
		return nil, err
	}

	// Register HTTP server
	if err := container.Provide(httpapi.NewServer); err != nil {
		return nil, err
	}

	return container, nil
}

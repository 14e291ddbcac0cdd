//go:build wireinject
// +build wireinject

package di

import (
	"HealthFeas/pkg/config"
	"HealthFeas/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Infrastructure clients
		ProvideCacheService,
		ProvideKafkaProducer,

		// Repositories
		ProvideResultCache,

		// Use cases
		ProvideRunner,
		ProvideCalculator,

		// Transport
		ProvideLimiter,
		ProvideScenarioHandler,
		ProvideLiveHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

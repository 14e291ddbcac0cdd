package di

import (
	"context"
	"fmt"
	"time"

	domrepo "HealthFeas/internal/domain/repository"
	"HealthFeas/internal/handler/api"
	"HealthFeas/internal/repository"
	"HealthFeas/internal/service/ratelimit"
	"HealthFeas/internal/services/ventures"
	"HealthFeas/internal/usecase"
	pkgcache "HealthFeas/pkg/cache"
	"HealthFeas/pkg/config"
	xhttp "HealthFeas/pkg/http"
	pkgkafka "HealthFeas/pkg/kafka"
	applogger "HealthFeas/pkg/logger"
	"HealthFeas/pkg/metrics"
	"HealthFeas/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger creates the application logger from the logging section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates the Prometheus registry served on the metrics path.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) *metrics.Recorder {
	return metrics.New(reg)
}

// ProvideCacheService creates the configured cache backend, or nil for "none".
func ProvideCacheService(cfg *config.Config) (pkgcache.Service, error) {
	c := cfg.Cache
	switch c.Backend {
	case pkgcache.BackendNone:
		return nil, nil
	case pkgcache.BackendMemory:
		return pkgcache.NewMemoryCache(
			pkgcache.WithMemoryMaxSize(c.MemoryMaxSize),
			pkgcache.WithMemoryTTL(c.TTL),
		), nil
	case pkgcache.BackendRedis, pkgcache.BackendLayered:
		rc, err := pkgcache.NewRedisCache(context.Background(),
			pkgcache.WithRedisAddr(c.Redis.Host, c.Redis.Port),
			pkgcache.WithRedisAuth(c.Redis.Password, c.Redis.DB),
			pkgcache.WithRedisPrefix(c.Redis.Prefix),
			pkgcache.WithRedisKeyVersion(c.Redis.KeyVersion),
			pkgcache.WithRedisPool(c.Redis.PoolSize, c.Redis.PoolSize/4, 5*time.Second),
			pkgcache.WithRedisDialTimeout(c.Redis.DialTimeout),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		if c.Backend == pkgcache.BackendRedis {
			return rc, nil
		}
		return pkgcache.NewLayeredCache(rc,
			pkgcache.WithLayeredMemorySize(c.MemoryMaxSize),
			pkgcache.WithLayeredMemoryTTL(c.TTL),
		), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Backend)
	}
}

// ProvideResultCache adapts the cache backend for scenario results.
func ProvideResultCache(svc pkgcache.Service) domrepo.ResultCache {
	if svc == nil {
		return nil
	}
	return repository.NewCacheResultStore(svc, "results")
}

// ProvideRunner registers every venture model.
func ProvideRunner() *usecase.ScenarioRunner {
	return usecase.NewScenarioRunner(ventures.All()...)
}

// ProvideCalculator creates the cached scenario calculator.
func ProvideCalculator(
	runner *usecase.ScenarioRunner,
	cache domrepo.ResultCache,
	m *metrics.Recorder,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.ScenarioCalculator {
	return usecase.NewScenarioCalculator(runner, cache, m, l, cfg.Cache.TTL)
}

// ProvideLimiter throttles live recomputes per WebSocket session.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(float64(cfg.Live.Burst), float64(cfg.Live.RatePerSecond))
}

func ProvideScenarioHandler(l *applogger.Logger, calc *usecase.ScenarioCalculator, cfg *config.Config) *api.ScenarioEchoHandler {
	return api.NewScenarioEchoHandler(l, calc, cfg.Scenario.Defaults)
}

func ProvideLiveHandler(l *applogger.Logger, calc *usecase.ScenarioCalculator, cfg *config.Config, rl *ratelimit.Limiter) *api.LiveScenarioHandler {
	return api.NewLiveScenarioHandler(l, calc, cfg.Scenario.Defaults, rl)
}

// ProvideHTTPServer creates the Echo server with every handler registered.
func ProvideHTTPServer(
	cfg *config.Config,
	l *applogger.Logger,
	reg *prometheus.Registry,
	m *metrics.Recorder,
	scenarios *api.ScenarioEchoHandler,
	live *api.LiveScenarioHandler,
) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithAllowOrigins(cfg.Server.AllowOrigins),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(cfg.Metrics.Path, reg, m))
	}
	return xhttp.NewServer(l, []xhttp.Handler{scenarios, live}, opts...)
}

// ProvideKafkaProducer creates the log-shipping producer, or nil when Kafka is disabled.
func ProvideKafkaProducer(cfg *config.Config, reg *prometheus.Registry) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithKey(cfg.Environment),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithRegisterer(reg),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideApp assembles the application and attaches the log collector when a
// producer is available.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	producer *pkgkafka.Producer,
	cacheSvc pkgcache.Service,
) *server.App {
	var resources []server.Resource
	if producer != nil {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval: cfg.Kafka.FlushEvery,
			Topic:        cfg.Kafka.LogTopic,
			Publisher:    producer,
		})
		resources = append(resources, server.Resource{Name: "log collector", Closer: server.CloserFunc(func() error {
			l.RemoveCollector()
			return nil
		})})
		resources = append(resources, server.Resource{Name: "kafka producer", Closer: producer})
	}
	if cacheSvc != nil {
		resources = append(resources, server.Resource{Name: "cache", Closer: cacheSvc})
	}
	return server.New(cfg, l, srv, resources...)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"HealthFeas/internal/domain/models"
	domrepo "HealthFeas/internal/domain/repository"
	pkgcache "HealthFeas/pkg/cache"
	applogger "HealthFeas/pkg/logger"
	"HealthFeas/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// ScenarioCalculator serves scenario runs to the outer surfaces. Results are
// memoised by input so repeated slider positions do not recompute.
type ScenarioCalculator struct {
	runner  *ScenarioRunner
	cache   domrepo.ResultCache
	metrics domrepo.Metrics
	l       *applogger.Logger
	ttl     time.Duration
}

// NewScenarioCalculator creates a calculator. cache, metrics and logger may be nil.
func NewScenarioCalculator(
	runner *ScenarioRunner,
	cache domrepo.ResultCache,
	metrics domrepo.Metrics,
	l *applogger.Logger,
	ttl time.Duration,
) *ScenarioCalculator {
	if metrics == nil {
		metrics = metricsNop
	}
	return &ScenarioCalculator{
		runner:  runner,
		cache:   cache,
		metrics: metrics,
		l:       l,
		ttl:     ttl,
	}
}

// Calculate runs a single venture, consulting the cache first.
func (c *ScenarioCalculator) Calculate(ctx context.Context, g models.GlobalAssumptions, p models.VentureParameters) (models.ScenarioResult, error) {
	if p == nil {
		return models.ScenarioResult{}, fmt.Errorf("calculate: %w: nil parameters", models.ErrUnknownVenture)
	}
	start := time.Now()
	id := p.Venture()

	key, err := cacheKey(g, p)
	if err != nil {
		return models.ScenarioResult{}, fmt.Errorf("calculate %s: %w", id, err)
	}

	if c.cache != nil {
		var cached models.ScenarioResult
		if err := c.cache.Get(ctx, key, &cached); err == nil {
			c.metrics.RecordCache("hit")
			c.debug("scenario cache_hit", applogger.String("venture", string(id)))
			c.observe(cached, start)
			return cached, nil
		} else if !errors.Is(err, domrepo.ErrNotCached) {
			c.metrics.RecordCache("error")
			c.warn("scenario cache_get_error", applogger.String("venture", string(id)), applogger.Error(err))
		} else {
			c.metrics.RecordCache("miss")
		}
	}

	res, err := c.runner.Run(g, p)
	if err != nil {
		c.metrics.RecordError("run")
		return models.ScenarioResult{}, err
	}

	c.observe(res, start)

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, res, c.ttl); err != nil {
			c.metrics.RecordCache("error")
			c.warn("scenario cache_set_error", applogger.String("venture", string(id)), applogger.Error(err))
		}
	}
	return res, nil
}

// CalculatePortfolio runs several ventures in parallel under the same globals and
// returns results in input order.
func (c *ScenarioCalculator) CalculatePortfolio(ctx context.Context, g models.GlobalAssumptions, params ...models.VentureParameters) ([]models.ScenarioResult, error) {
	start := time.Now()
	out := make([]models.ScenarioResult, len(params))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, p := range params {
		i, p := i, p
		eg.Go(func() error {
			res, err := c.Calculate(egCtx, g, p)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("calculate portfolio: %w", err)
	}

	c.metrics.RecordLatency("calculate_portfolio", time.Since(start).Seconds())
	return out, nil
}

// observe records a served run, computed or cached.
func (c *ScenarioCalculator) observe(res models.ScenarioResult, start time.Time) {
	c.metrics.RecordRun(res.Venture)
	if !res.Appraisal.IRR.Valid {
		c.metrics.RecordUndefined(res.Venture, "irr")
	}
	if !res.Appraisal.Payback.Valid {
		c.metrics.RecordUndefined(res.Venture, "payback")
	}
	c.metrics.RecordLatency("calculate", time.Since(start).Seconds())
}

var metricsNop domrepo.Metrics = metrics.Nop{}

func cacheKey(g models.GlobalAssumptions, p models.VentureParameters) (string, error) {
	fp, err := pkgcache.Fingerprint(struct {
		Globals models.GlobalAssumptions `json:"g"`
		Params  models.VentureParameters `json:"p"`
	}{g, p})
	if err != nil {
		return "", err
	}
	return pkgcache.Key("scenario", string(p.Venture()), fp), nil
}

func (c *ScenarioCalculator) debug(msg string, fields ...applogger.Field) {
	if c.l != nil {
		c.l.Debug(msg, fields...)
	}
}

func (c *ScenarioCalculator) warn(msg string, fields ...applogger.Field) {
	if c.l != nil {
		c.l.Warn(msg, fields...)
	}
}

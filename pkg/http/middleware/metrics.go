package middleware

import (
	"strconv"
	"time"

	applogger "HealthFeas/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Observer receives per-request measurements.
type Observer interface {
	InFlight(route, method string, delta float64)
	ObserveRequest(route, method, status, class string, seconds float64, bytes int64)
}

// Metrics records request metrics labelled by route template, keeping label
// cardinality bounded. Requests slower than slowThreshold are logged.
func Metrics(obs Observer, l *applogger.Logger, slowThreshold time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routeLabel(c)
			method := c.Request().Method

			obs.InFlight(route, method, 1)
			defer obs.InFlight(route, method, -1)
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()
			duration := time.Since(start)
			obs.ObserveRequest(route, method, strconv.Itoa(res.Status), statusClass(res.Status), duration.Seconds(), res.Size)

			if l != nil && slowThreshold > 0 && duration >= slowThreshold {
				l.Warn("http request slow",
					applogger.String("route", route),
					applogger.String("method", method),
					applogger.Int("status", res.Status),
					applogger.Duration("duration_ms", duration),
				)
			}
			return nil
		}
	}
}

func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return "unmatched"
}

func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

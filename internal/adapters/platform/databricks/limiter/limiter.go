package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

const (
	defaultRateLimitRPS = 10
	minRateLimitRPS     = 1
	maxRateLimitRPS     = 50
)

// Limiter throttles Databricks workspace API calls. One instance is shared
// by every handler bound to the same client.
type Limiter struct {
	rl *rate.Limiter
}

// New builds a limiter at rps requests per second, clamping out-of-range
// values to the default.
func New(rps int, logger ports.Logger) *Limiter {
	limitValue := defaultRateLimitRPS
	if rps >= minRateLimitRPS && rps <= maxRateLimitRPS {
		limitValue = rps
	} else if rps != 0 {
		logger.Warnf(context.Background(),
			"Invalid API RPS configured (%d), using default %d RPS. Valid range: %d-%d.",
			rps, defaultRateLimitRPS, minRateLimitRPS, maxRateLimitRPS)
	}
	return &Limiter{rl: rate.NewLimiter(rate.Limit(limitValue), limitValue)}
}

func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.rl.Wait(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.CodePlatformAPIError, "rate limiter wait failed")
	}
	return nil
}

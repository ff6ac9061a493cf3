package backoff

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/architeacher/svc-order-events/internal/config"
)

type (
	// Strategy returns how long to wait before the next attempt at a broker
	// connection, a database ping or an outbox publish.
	Strategy interface {
		// Backoff returns the delay before the next attempt given the number of
		// attempts that already failed.
		Backoff(failures int) time.Duration
	}

	// Exponential grows the delay by a multiplier per failure, spreads it by
	// jitter and never exceeds the configured maximum.
	Exponential struct {
		base       time.Duration
		max        time.Duration
		multiplier float64
		jitter     float64
		random     func() float64
	}
)

// NewExponentialStrategy builds the strategy from the BACKOFF_* settings.
// Out-of-range settings are clamped: a multiplier below 1 keeps the delay
// flat, jitter is limited to [0, 1] and a max below the base delay is raised
// to it.
func NewExponentialStrategy(cfg config.BackoffConfig) Exponential {
	base := max(cfg.BaseDelay, 0)

	return Exponential{
		base:       base,
		max:        max(cfg.MaxDelay, base),
		multiplier: max(cfg.Multiplier, 1),
		jitter:     min(max(cfg.Jitter, 0), 1),
		random:     rand.Float64,
	}
}

func (e Exponential) Backoff(failures int) time.Duration {
	if e.base == 0 {
		return 0
	}

	failures = max(failures, 0)

	delay := min(float64(e.base)*math.Pow(e.multiplier, float64(failures)), float64(e.max))

	if e.jitter > 0 {
		delay *= 1 + e.jitter*(e.random()*2-1)
	}

	return time.Duration(min(max(delay, 0), float64(e.max)))
}

package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/shared/backoff"
)

var errNoConnectAttempts = errors.New("no connection attempts allowed")

// connectWithBackoff calls connect until it succeeds, maxAttempts is used up
// or ctx ends. It only runs at startup; a connection lost later is not
// re-established.
func connectWithBackoff(
	ctx context.Context,
	dependency string,
	connect func(context.Context) error,
	strategy backoff.Strategy,
	maxAttempts int,
	logger infrastructure.Logger,
) error {
	if maxAttempts <= 0 {
		return fmt.Errorf("%s: %w", dependency, errNoConnectAttempts)
	}

	var err error

	for attempt := range maxAttempts {
		if err = connect(ctx); err == nil {
			if attempt > 0 {
				logger.Info().Str("dependency", dependency).Int("attempts", attempt+1).Msg("connection established")
			}

			return nil
		}

		if attempt == maxAttempts-1 {
			break
		}

		delay := strategy.Backoff(attempt)

		logger.Warn().
			Err(err).
			Str("dependency", dependency).
			Int("attempt", attempt+1).
			Dur("retry_in", delay).
			Msg("connection failed, retrying")

		timer := time.NewTimer(delay)

		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("%s: %w", dependency, ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Errorf("failed to connect to %s after %d attempts: %w", dependency, maxAttempts, err)
}

package runtime

import (
	"context"
	"errors"
	"net/http"
)

// startOpsServer serves probes and metrics in the background. A listener
// failure cancels stop so the process shuts down.
func (d *Dependencies) startOpsServer(stop context.CancelFunc) {
	if d.Infra.OpsServer == nil {
		return
	}

	go func() {
		d.logger.Info().Str("address", d.Infra.OpsServer.Addr).Msg("ops server starting up")

		if err := d.Infra.OpsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.logger.Error().Err(err).Msg("unable to start ops server")
			stop()
		}
	}()
}

func (d *Dependencies) monitorConfigChanges(ctx context.Context) {
	reloadErrors := d.configLoader.WatchConfigSignals(ctx)

	go func() {
		for err := range reloadErrors {
			if err != nil {
				d.logger.Error().Err(err).Msg("failed to reload config")
				continue
			}

			d.logger.Info().Msg("config reloaded successfully")
		}

		d.logger.Info().Msg("stopping config monitor")
	}()
}

// cleanup releases every dependency. The queue goes first so no handler
// starts on a closing database.
func (d *Dependencies) cleanup(shutdownCtx context.Context) {
	d.logger.Info().Msg("cleaning up resources...")

	if d.Infra.OpsServer != nil {
		if err := d.Infra.OpsServer.Shutdown(shutdownCtx); err != nil {
			d.logger.Error().Err(err).Msg("unable to gracefully shutdown ops server")
		}
	}

	if d.Infra.QueueClient != nil {
		if err := d.Infra.QueueClient.Close(); err != nil {
			d.logger.Error().Err(err).Msg("failed to close queue")
		}
	}

	if d.stopQueueEvents != nil {
		d.stopQueueEvents()
	}

	if d.Infra.CacheClient != nil {
		if err := d.Infra.CacheClient.Close(); err != nil {
			d.logger.Error().Err(err).Msg("failed to close cache connection")
		}
	}

	if d.Infra.StorageClient != nil {
		if err := d.Infra.StorageClient.Close(); err != nil {
			d.logger.Error().Err(err).Msg("failed to close storage")
		}
	}

	if d.Infra.Metrics != nil {
		if err := d.Infra.Metrics.Shutdown(shutdownCtx); err != nil {
			d.logger.Error().Err(err).Msg("failed to shutdown metrics")
		}
	}

	if d.tracerShutdownFunc != nil {
		if err := d.tracerShutdownFunc(shutdownCtx); err != nil {
			d.logger.Error().Err(err).Msg("failed to shutdown tracer")
		}
	}

	d.logger.Info().Msg("cleanup completed")
}

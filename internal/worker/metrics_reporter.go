package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/motor-mingle/server/internal/observability"
)

// RunMetricsReporter logs a request summary every interval until ctx is done.
// A non-positive interval returns immediately.
func RunMetricsReporter(ctx context.Context, metrics *observability.Metrics, logger *zap.Logger, interval time.Duration) {
	if metrics == nil || interval <= 0 {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reportMetrics(metrics.Snapshot(), logger)
		}
	}
}

func reportMetrics(snap observability.Snapshot, logger *zap.Logger) {
	var requests, errors int64
	for _, stats := range snap.Requests {
		requests += stats.Count
	}
	for _, count := range snap.Errors {
		errors += count
	}
	logger.Info("metrics summary",
		zap.Int64("uptime_seconds", snap.UptimeSeconds),
		zap.Int("routes", len(snap.Requests)),
		zap.Int64("requests", requests),
		zap.Int64("errors", errors))
}

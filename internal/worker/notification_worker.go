package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/motor-mingle/server/internal/observability"
	"github.com/motor-mingle/server/internal/service"
)

// Background lists the long running tasks started alongside the HTTP server.
type Background struct {
	Notifications  *service.NotificationService
	Metrics        *observability.Metrics
	Logger         *zap.Logger
	ReportInterval time.Duration
}

// Start subscribes notification handlers and launches the metrics reporter.
// The reporter stops when ctx is cancelled.
func Start(ctx context.Context, bg Background) {
	StartNotificationWorker(bg.Notifications)
	go RunMetricsReporter(ctx, bg.Metrics, bg.Logger, bg.ReportInterval)
}

// StartNotificationWorker subscribes the notification handlers to marketplace events.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/motor-mingle/server/internal/observability"
)

func TestRunMetricsReporter_LogsUntilCancelled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics()
	metrics.RecordRequest("/listings", "GET", 200, time.Millisecond)
	metrics.RecordRequest("/listings", "GET", 200, time.Millisecond)
	metrics.RecordError("/cart", "POST", "UNAUTHORIZED")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunMetricsReporter(ctx, metrics, zap.New(core), 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("metrics summary").Len() > 0
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop after cancel")
	}

	fields := logs.FilterMessage("metrics summary").All()[0].ContextMap()
	assert.EqualValues(t, 2, fields["requests"])
	assert.EqualValues(t, 1, fields["errors"])
}

func TestRunMetricsReporter_Disabled(t *testing.T) {
	done := make(chan struct{})
	go func() {
		RunMetricsReporter(context.Background(), observability.NewMetrics(), nil, 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled reporter should return immediately")
	}
}

package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/listings/:id", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/listings/:id", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/users", "GET", 403, time.Millisecond)
	m.RecordError("/users", "GET", "FORBIDDEN")

	snap := m.Snapshot()

	stats := snap.Requests["/listings/:id|GET|200"]
	assert.EqualValues(t, 2, stats.Count)
	assert.InDelta(t, 20.0, stats.AvgLatencyMS, 0.001)
	assert.EqualValues(t, 1, snap.Requests["/users|GET|403"].Count)
	assert.EqualValues(t, 1, snap.Errors["/users|GET|FORBIDDEN"])
}

func TestMetricsSnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.RecordError("/x", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	m.RecordError("/x", "GET", "NOT_FOUND")

	assert.EqualValues(t, 1, snap.Errors["/x|GET|NOT_FOUND"])
	assert.EqualValues(t, 2, m.Snapshot().Errors["/x|GET|NOT_FOUND"])
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
	})
}

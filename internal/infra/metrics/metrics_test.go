//go:build unit

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.AvailabilityChecked("free")
	m.AvailabilityChecked("free")
	m.AvailabilityChecked("conflict")
	m.ReservationCreated("booking")
	m.OutboxPublished("sent")
	m.ObserveHTTP("GET", "/api/rooms", 200, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.availabilityChecks.WithLabelValues("free")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityChecks.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationsCreated.WithLabelValues("booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outboxPublished.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/rooms", "200")))
}

func TestMetrics_RegisterIsIdempotent(t *testing.T) {
	m := New()

	assert.NotPanics(t, m.register)
	assert.NotNil(t, m.Handler())
}

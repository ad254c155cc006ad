package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewWithRegistry("booking", prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 201, 15*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 201, 5*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 409, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("booking", "POST", "/api/v1/bookings", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("booking", "POST", "/api/v1/bookings", "409")))
}

func TestMetrics_ObserveDBQuery(t *testing.T) {
	m := NewWithRegistry("booking", prometheus.NewRegistry())

	m.ObserveDBQuery("update", time.Millisecond, nil)
	m.ObserveDBQuery("update", time.Millisecond, errors.New("conflict"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("booking", "update")))
}

func TestMetrics_IncBooking(t *testing.T) {
	m := NewWithRegistry("booking", prometheus.NewRegistry())

	m.IncBooking(OutcomeConfirmed)
	m.IncBooking(OutcomeConfirmed)
	m.IncBooking(OutcomeCapacityExceeded)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("booking", OutcomeConfirmed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("booking", OutcomeCapacityExceeded)))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBooking(OutcomeConfirmed)
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("select", time.Second, nil)
	})
}

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("/swap/quote", "POST", 200, 10*time.Millisecond)
	m.ObserveRequest("/swap/quote", "POST", 200, 5*time.Millisecond)
	m.ObserveRequest("", "GET", 404, time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/swap/quote", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))

	m.RecordPriceLoad("cache", nil)
	m.RecordPriceLoad("feed", errors.New("boom"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.priceLoads.WithLabelValues("cache", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.priceLoads.WithLabelValues("feed", "error")))

	m.RecordSubmission(nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues("ok")))

	done := m.SessionOpened()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessions))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.sessions))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("/", "GET", 200, time.Second)
		m.RecordPriceLoad("feed", nil)
		m.RecordSubmission(nil)
		m.SessionOpened()()
	})
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

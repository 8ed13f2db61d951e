package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SweepMetrics records metadata for reminder sweeps and the notifications
// they produce.
type SweepMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	created  *prometheus.CounterVec
}

// NewSweepMetrics registers the sweep metrics on the provided registerer.
func NewSweepMetrics(reg prometheus.Registerer) *SweepMetrics {
	if reg == nil {
		return &SweepMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sweep_duration_seconds",
		Help:    "Duration of reminder sweeps in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"sweep"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sweep_success",
		Help: "Successful reminder sweep executions.",
	}, []string{"sweep"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sweep_failure",
		Help: "Failed reminder sweep executions.",
	}, []string{"sweep"})
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "Notifications created by reminder rules.",
	}, []string{"category"})
	reg.MustRegister(duration, success, failure, created)
	return &SweepMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		created:  created,
	}
}

// ObserveDuration records the duration for the named sweep.
func (m *SweepMetrics) ObserveDuration(sweep string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(sweep)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named sweep.
func (m *SweepMetrics) IncSuccess(sweep string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(sweep)).Inc()
}

// IncFailure increments the failure counter for the named sweep.
func (m *SweepMetrics) IncFailure(sweep string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(sweep)).Inc()
}

// IncCreated increments the created-notification counter for a category.
func (m *SweepMetrics) IncCreated(category string) {
	if m == nil || m.created == nil {
		return
	}
	m.created.WithLabelValues(normalizeLabel(category)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

// Package metrics provides observability for the tap engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the tap engine's Prometheus collectors.
type Metrics struct {
	// Tap outcomes by result and detail (direction for accepts, reason for rejects)
	TapOutcome *prometheus.CounterVec

	// End-to-end tap processing latency
	ProcessLatency prometheus.Histogram

	// Per-identity lock wait duration
	LockWait prometheus.Histogram

	// Notification delivery attempts by status
	DeliveryOutcome *prometheus.CounterVec
}

// New creates a Metrics instance with all tap engine metrics registered.
func New() *Metrics {
	return &Metrics{
		TapOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tapgate_tap_outcomes_total",
			Help: "Total tap outcomes by result and detail",
		}, []string{"result", "detail"}), // result: "accepted"|"rejected"; detail: direction or reason code

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tapgate_tap_process_duration_seconds",
			Help:    "Duration of full tap processing including ledger append",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		LockWait: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tapgate_identity_lock_wait_seconds",
			Help:    "Time spent waiting for the per-identity serialization slot",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),

		DeliveryOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tapgate_notification_deliveries_total",
			Help: "Total notification delivery attempts by status",
		}, []string{"status"}), // status: "sent"|"failed"
	}
}

// IncrementAccepted records an accepted tap with its direction.
func (m *Metrics) IncrementAccepted(direction string) {
	if m != nil {
		m.TapOutcome.WithLabelValues("accepted", direction).Inc()
	}
}

// IncrementRejected records a rejected tap with its reason code.
func (m *Metrics) IncrementRejected(reason string) {
	if m != nil {
		m.TapOutcome.WithLabelValues("rejected", reason).Inc()
	}
}

// ObserveProcessLatency records the total tap processing duration.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}

// ObserveLockWait records the time spent acquiring the per-identity slot.
func (m *Metrics) ObserveLockWait(d time.Duration) {
	if m != nil {
		m.LockWait.Observe(d.Seconds())
	}
}

// IncrementDelivery records one recipient delivery attempt.
func (m *Metrics) IncrementDelivery(status string) {
	if m != nil {
		m.DeliveryOutcome.WithLabelValues(status).Inc()
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FulfillmentMetrics records the outcome of inquiry fulfillment attempts.
type FulfillmentMetrics struct {
	duration  *prometheus.HistogramVec
	completed *prometheus.CounterVec
	rejected  *prometheus.CounterVec
}

// NewFulfillmentMetrics registers the fulfillment metrics on the provided registerer.
func NewFulfillmentMetrics(reg prometheus.Registerer) *FulfillmentMetrics {
	if reg == nil {
		return &FulfillmentMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inquiry_fulfillment_duration_seconds",
		Help:    "Duration of inquiry fulfillment transactions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	completed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiry_fulfillment_completed",
		Help: "Inquiries moved to Completed with stock deducted.",
	}, []string{"variant_kind"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiry_fulfillment_rejected",
		Help: "Fulfillment attempts rejected before commit.",
	}, []string{"reason"})
	reg.MustRegister(duration, completed, rejected)
	return &FulfillmentMetrics{
		duration:  duration,
		completed: completed,
		rejected:  rejected,
	}
}

// ObserveDuration records how long a fulfillment transaction took.
func (f *FulfillmentMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if f == nil || f.duration == nil {
		return
	}
	f.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncCompleted increments the completion counter for the given variant kind.
func (f *FulfillmentMetrics) IncCompleted(variantKind string) {
	if f == nil || f.completed == nil {
		return
	}
	f.completed.WithLabelValues(normalizeLabel(variantKind)).Inc()
}

// IncRejected increments the rejection counter for the given reason.
func (f *FulfillmentMetrics) IncRejected(reason string) {
	if f == nil || f.rejected == nil {
		return
	}
	f.rejected.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

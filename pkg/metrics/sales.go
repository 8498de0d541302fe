package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SaleMetrics records outcomes of sale finalization.
type SaleMetrics struct {
	finalized *prometheus.CounterVec
	failed    *prometheus.CounterVec
	total     prometheus.Histogram
}

// NewSaleMetrics registers the sale metrics on the provided registerer.
func NewSaleMetrics(reg prometheus.Registerer) *SaleMetrics {
	if reg == nil {
		return &SaleMetrics{}
	}
	finalized := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_finalized_total",
		Help: "Successfully finalized sales.",
	}, []string{"register"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_failed_total",
		Help: "Finalization attempts rejected or rolled back.",
	}, []string{"register", "reason"})
	total := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sale_total_amount",
		Help:    "Distribution of finalized sale totals.",
		Buckets: prometheus.ExponentialBuckets(1, 2.5, 8),
	})
	reg.MustRegister(finalized, failed, total)
	return &SaleMetrics{
		finalized: finalized,
		failed:    failed,
		total:     total,
	}
}

// IncFinalized increments the finalized counter for the named register.
func (s *SaleMetrics) IncFinalized(register string) {
	if s == nil || s.finalized == nil {
		return
	}
	s.finalized.WithLabelValues(normalizeLabel(register)).Inc()
}

// IncFailed increments the failure counter with the rejection reason.
func (s *SaleMetrics) IncFailed(register, reason string) {
	if s == nil || s.failed == nil {
		return
	}
	s.failed.WithLabelValues(normalizeLabel(register), normalizeLabel(reason)).Inc()
}

// ObserveTotal records the monetary total of a finalized sale.
func (s *SaleMetrics) ObserveTotal(amount float64) {
	if s == nil || s.total == nil {
		return
	}
	s.total.Observe(amount)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

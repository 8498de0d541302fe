package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSaleMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSaleMetrics(reg)

	m.IncFinalized("counter-1")
	m.IncFinalized("counter-1")
	m.IncFailed("counter-1", "insufficient_stock")
	m.IncFailed("", "")
	m.ObserveTotal(21.50)

	if got := testutil.ToFloat64(m.finalized.WithLabelValues("counter-1")); got != 2 {
		t.Fatalf("expected 2 finalized, got %v", got)
	}
	if got := testutil.ToFloat64(m.failed.WithLabelValues("counter-1", "insufficient_stock")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.failed.WithLabelValues("unknown", "unknown")); got != 1 {
		t.Fatalf("expected empty labels to normalize, got %v", got)
	}
}

func TestSaleMetricsNilSafe(t *testing.T) {
	var m *SaleMetrics
	m.IncFinalized("counter-1")
	m.IncFailed("counter-1", "x")
	m.ObserveTotal(1)

	unregistered := NewSaleMetrics(nil)
	unregistered.IncFinalized("counter-1")
	unregistered.ObserveTotal(2)
}

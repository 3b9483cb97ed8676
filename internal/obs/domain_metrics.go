package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteComputeTotal counts quotation computations by outcome.
	QuoteComputeTotal *prometheus.CounterVec
	// RefundEstimateTotal counts refund estimates by resulting percentage band.
	RefundEstimateTotal *prometheus.CounterVec
	// ReportShareTotal counts shared report creations by outcome.
	ReportShareTotal *prometheus.CounterVec
	// ReportFetchTotal counts shared report lookups by outcome.
	ReportFetchTotal *prometheus.CounterVec
	// QuoteComputeDuration records quotation computation latency in milliseconds.
	QuoteComputeDuration prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific
// Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteComputeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_compute_total",
			Help:      "Count of quotation computations by outcome.",
		}, []string{"result"})
		RefundEstimateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refund_estimate_total",
			Help:      "Count of refund estimates by percentage band.",
		}, []string{"band"})
		ReportShareTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_share_total",
			Help:      "Count of shared report creations by outcome.",
		}, []string{"result"})
		ReportFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_fetch_total",
			Help:      "Count of shared report lookups by outcome.",
		}, []string{"result"})
		QuoteComputeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_compute_duration_ms",
			Help:      "Latency of quotation computations in milliseconds.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		})

		mustRegisterCollector(reg, QuoteComputeTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteComputeTotal = v
			}
		})
		mustRegisterCollector(reg, RefundEstimateTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				RefundEstimateTotal = v
			}
		})
		mustRegisterCollector(reg, ReportShareTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				ReportShareTotal = v
			}
		})
		mustRegisterCollector(reg, ReportFetchTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				ReportFetchTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteComputeDuration, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				QuoteComputeDuration = v
			}
		})
	})
}

package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// StatementsRenderedTotal counts generated statements by output format.
	StatementsRenderedTotal *prometheus.CounterVec
	// GenreResolutionTotal counts genre registry lookups by outcome.
	GenreResolutionTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		StatementsRenderedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statements_rendered_total",
			Help:      "Count of rendered rental statements by format.",
		}, []string{"format"})
		GenreResolutionTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "genre_resolution_total",
			Help:      "Count of genre registry resolutions by outcome.",
		}, []string{"result"})

		mustRegisterCollector(reg, StatementsRenderedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				StatementsRenderedTotal = v
			}
		})
		mustRegisterCollector(reg, GenreResolutionTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				GenreResolutionTotal = v
			}
		})
	})
}

// ObserveStatementRendered records a rendered statement. Safe to call before
// domain metrics are registered.
func ObserveStatementRendered(format string) {
	if StatementsRenderedTotal == nil {
		return
	}
	StatementsRenderedTotal.WithLabelValues(format).Inc()
}

// ObserveGenreResolution records a registry lookup outcome ("hit" or "miss").
func ObserveGenreResolution(result string) {
	if GenreResolutionTotal == nil {
		return
	}
	GenreResolutionTotal.WithLabelValues(result).Inc()
}

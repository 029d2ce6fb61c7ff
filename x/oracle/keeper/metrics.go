package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the oracle module
type Metrics struct {
	Aggregations        prometheus.Counter
	AggregatedPrice     *prometheus.GaugeVec
	StaleSourcesSkipped prometheus.Counter
	SourceCallFailures  prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers oracle metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			Aggregations: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "slend",
				Subsystem: "oracle",
				Name:      "aggregations_total",
				Help:      "Total aggregation calls, fruitful or not",
			}),
			AggregatedPrice: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "slend",
				Subsystem: "oracle",
				Name:      "aggregated_price",
				Help:      "Last aggregated price per asset",
			}, []string{"asset"}),
			StaleSourcesSkipped: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "slend",
				Subsystem: "oracle",
				Name:      "stale_sources_skipped_total",
				Help:      "Sources excluded from fetches for stale heartbeats",
			}),
			SourceCallFailures: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "slend",
				Subsystem: "oracle",
				Name:      "source_call_failures_total",
				Help:      "Price source calls that errored and were skipped",
			}),
		}
	})
	return metrics
}

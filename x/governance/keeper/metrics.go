package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the governance module
type Metrics struct {
	ProposalsCreated  prometheus.Counter
	VotesCast         prometheus.Counter
	ProposalsExecuted prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers governance metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			ProposalsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "slend",
				Subsystem: "governance",
				Name:      "proposals_created_total",
				Help:      "Total proposals created",
			}),
			VotesCast: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "slend",
				Subsystem: "governance",
				Name:      "votes_cast_total",
				Help:      "Total votes cast across all proposals",
			}),
			ProposalsExecuted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "slend",
				Subsystem: "governance",
				Name:      "proposals_executed_total",
				Help:      "Total proposals executed after timelock",
			}),
		}
	})
	return metrics
}

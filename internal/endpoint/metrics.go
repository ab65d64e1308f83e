package endpoint

import (
	"minijournal/internal/metrics"
	"time"
)

func (endpoint *Listener) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	accepted := endpoint.Metrics.Accepted.Swap(0)
	failed := endpoint.Metrics.AcceptErrors.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		{
			Name:        "accepted_connections",
			Description: "Total connections accepted and registered in the interval",
			Namespace:   endpoint.Namespace,
			Value: metrics.MetricValue{
				Raw:      accepted,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "accept_errors",
			Description: "Total connections that failed to be accepted or registered in the interval",
			Namespace:   endpoint.Namespace,
			Value: metrics.MetricValue{
				Raw:      failed,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
	}
	return
}

package multiplexer

import (
	"minijournal/internal/metrics"
	"time"
)

func (mux *Multiplexer) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	dispatched := mux.Metrics.Dispatched.Swap(0)
	ignored := mux.Metrics.Ignored.Swap(0)
	panics := mux.Metrics.Panics.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		{
			Name:        "registered_endpoints",
			Description: "Endpoints in the registry at collection time",
			Namespace:   mux.Namespace,
			Value: metrics.MetricValue{
				Raw:      len(mux.endpoints),
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Gauge,
			Timestamp: recordTime,
		},
		{
			Name:        "dispatched_total",
			Description: "Total readiness events delivered to endpoints in the interval",
			Namespace:   mux.Namespace,
			Value: metrics.MetricValue{
				Raw:      dispatched,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "ignored_total",
			Description: "Total readiness events for unregistered descriptors in the interval",
			Namespace:   mux.Namespace,
			Value: metrics.MetricValue{
				Raw:      ignored,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "callback_panics_total",
			Description: "Total recovered panics in readiness callbacks in the interval",
			Namespace:   mux.Namespace,
			Value: metrics.MetricValue{
				Raw:      panics,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
	}
	return
}

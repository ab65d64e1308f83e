package beats

import (
	"minijournal/internal/metrics"
	"time"
)

func (mod *OutModule) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	sent := mod.metrics.Sent.Swap(0)
	failed := mod.metrics.WriteErrors.Swap(0)

	recordTime := time.Now()

	collection = []metrics.Metric{
		{
			Name:        "records_written",
			Description: "Total events acknowledged by the beats server in the interval",
			Namespace:   mod.Namespace,
			Value: metrics.MetricValue{
				Raw:      sent,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "write_errors",
			Description: "Total failed sends to the beats server in the interval",
			Namespace:   mod.Namespace,
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

package file

import (
	"minijournal/internal/metrics"
	"time"
)

func (mod *OutModule) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	records := mod.metrics.Records.Swap(0)
	bytes := mod.metrics.Bytes.Swap(0)
	failed := mod.metrics.WriteErrors.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		{
			Name:        "records_written",
			Description: "Total records written to the output in the interval",
			Namespace:   mod.Namespace,
			Value: metrics.MetricValue{
				Raw:      records,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "bytes_written",
			Description: "Total payload bytes written to the output in the interval",
			Namespace:   mod.Namespace,
			Value: metrics.MetricValue{
				Raw:      bytes,
				Unit:     "bytes",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "write_errors",
			Description: "Total failed writes to the output in the interval",
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

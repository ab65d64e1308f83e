package reader

import (
	"minijournal/internal/metrics"
	"time"
)

func (instance *ChunkReader) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	chunks := instance.Metrics.Chunks.Swap(0)
	bytes := instance.Metrics.Bytes.Swap(0)
	failed := instance.Metrics.ReadErrors.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		{
			Name:        "chunks_read",
			Description: "Total non-empty chunks read in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      chunks,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "bytes_read",
			Description: "Total bytes read in the interval",
			Namespace:   instance.Namespace,
			Value: metrics.MetricValue{
				Raw:      bytes,
				Unit:     "bytes",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "read_errors",
			Description: "Total failed reads (excluding would-block) in the interval",
			Namespace:   instance.Namespace,
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

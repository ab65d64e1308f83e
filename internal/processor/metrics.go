package processor

import (
	"minijournal/internal/metrics"
	"time"
)

func (handler *SyslogHandler) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	collection = handler.Metrics.collect(handler.Namespace, interval)
	return
}

func (handler *JournalHandler) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	collection = handler.Metrics.collect(handler.Namespace, interval)
	return
}

func (handler *StreamHandler) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	collection = handler.Metrics.collect(handler.Namespace, interval)
	return
}

func (storage *MetricStorage) collect(namespace []string, interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	forwarded := storage.Forwarded.Swap(0)
	failed := storage.SinkFailures.Swap(0)
	reframed := storage.Reframed.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		{
			Name:        "records_forwarded",
			Description: "Total records handed to the output in the interval",
			Namespace:   namespace,
			Value: metrics.MetricValue{
				Raw:      forwarded,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "sink_failures",
			Description: "Total records the output failed to write in the interval",
			Namespace:   namespace,
			Value: metrics.MetricValue{
				Raw:      failed,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
		{
			Name:        "records_reframed",
			Description: "Total records with framing removed or rewritten in the interval",
			Namespace:   namespace,
			Value: metrics.MetricValue{
				Raw:      reframed,
				Unit:     "count",
				Interval: interval,
			},
			Type:      metrics.Counter,
			Timestamp: recordTime,
		},
	}
	return
}

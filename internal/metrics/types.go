package metrics

import (
	"sync"
	"time"
)

type Registry struct {
	mu      sync.RWMutex
	metrics map[time.Time]map[string]map[string]Metric // key0=timestamp, key1=namespace, key2=name
}

type MetricType string

const (
	Counter MetricType = "counter" // always increasing
	Gauge   MetricType = "gauge"   // can go up/down
)

// Container for a metric and associated data
type Metric struct {
	Name        string // e.g. chunks_read, accepted_connections
	Description string
	Namespace   []string // e.g. "Collector/Reader/Syslog"
	Value       MetricValue
	Type        MetricType
	Timestamp   time.Time // time when the metric was recorded
}

// Specific value of a metric
type MetricValue struct {
	Raw      interface{}   // uint64, int
	Unit     string        // e.g., "bytes", "count"
	Interval time.Duration // measurement window
}

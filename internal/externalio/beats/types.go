package beats

import "sync/atomic"

// Subset of the lumberjack sync client used by the module
type eventSender interface {
	Send(events []interface{}) (int, error)
	Close() error
}

type OutModule struct {
	Namespace []string
	sink      eventSender
	hostname  string
	metrics   MetricStorage
}

type MetricStorage struct {
	Sent        atomic.Uint64 // events acknowledged by the server
	WriteErrors atomic.Uint64 // failed sends
}

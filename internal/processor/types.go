package processor

import "sync/atomic"

// Record destination (stdout file output or beats output)
type Sink interface {
	Write(record []byte) (err error)
}

// Transforms one raw chunk and forwards the result to a sink
type Pipeline interface {
	Handle(chunk []byte) (err error)
}

type MetricStorage struct {
	Forwarded    atomic.Uint64 // records handed to the sink
	SinkFailures atomic.Uint64 // records the sink rejected
	Reframed     atomic.Uint64 // chunks with framing removed or rewritten
}

// Legacy syslog datagrams
type SyslogHandler struct {
	Namespace []string
	sink      Sink
	Metrics   MetricStorage
}

// Structured journal datagrams
type JournalHandler struct {
	Namespace []string
	sink      Sink
	Metrics   MetricStorage
}

// Stdout capture streams
type StreamHandler struct {
	Namespace []string
	sink      Sink
	Metrics   MetricStorage
}

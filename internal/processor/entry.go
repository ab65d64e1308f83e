// Per-transport framing cleanup between a chunk reader and the output sink
package processor

import (
	"minijournal/internal/global"
	"slices"
)

func NewSyslog(namespace []string, sink Sink) (new *SyslogHandler) {
	new = &SyslogHandler{
		Namespace: append(slices.Clip(namespace), global.NSoSyslog),
		sink:      sink,
	}
	return
}

func NewJournal(namespace []string, sink Sink) (new *JournalHandler) {
	new = &JournalHandler{
		Namespace: append(slices.Clip(namespace), global.NSoJrnl),
		sink:      sink,
	}
	return
}

func NewStream(namespace []string, sink Sink) (new *StreamHandler) {
	new = &StreamHandler{
		Namespace: append(slices.Clip(namespace), global.NSoStream),
		sink:      sink,
	}
	return
}

// Hands a record to the sink and records the outcome
func forward(sink Sink, record []byte, metrics *MetricStorage) (err error) {
	err = sink.Write(record)
	if err != nil {
		metrics.SinkFailures.Add(1)
		return
	}
	metrics.Forwarded.Add(1)
	return
}

package reader

import (
	"minijournal/internal/processor"
	"sync/atomic"
)

// Drains a readable descriptor into a single pipeline
type ChunkReader struct {
	Namespace []string
	pipeline  processor.Pipeline
	chunkSize int
	Metrics   MetricStorage
}

type MetricStorage struct {
	Chunks     atomic.Uint64 // non-empty reads forwarded to the pipeline
	Bytes      atomic.Uint64 // sum of forwarded chunk lengths
	ReadErrors atomic.Uint64 // reads failing with anything other than EAGAIN
}

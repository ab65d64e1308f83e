package file

import (
	"io"
	"sync/atomic"
)

type OutModule struct {
	Namespace []string
	sink      io.Writer
	closer    io.Closer // nil when the writer is not owned (stdout)
	metrics   MetricStorage
}

type MetricStorage struct {
	Records     atomic.Uint64 // number of records written
	Bytes       atomic.Uint64 // payload bytes written, separators excluded
	WriteErrors atomic.Uint64 // failed separator or payload writes
}

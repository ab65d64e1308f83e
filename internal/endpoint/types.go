package endpoint

import (
	"context"
	"sync/atomic"
)

// Drains a ready descriptor (satisfied by reader.ChunkReader)
type Reader interface {
	Read(ctx context.Context, fd int)
}

// Bound connectionless socket (syslog, journal)
type Datagram struct {
	Namespace []string
	fd        int
	path      string
	reader    Reader
}

// Bound listening stream socket (stdout capture)
type Listener struct {
	Namespace []string
	fd        int
	path      string
	reader    Reader // handed to every accepted stream
	Metrics   MetricStorage
}

// Accepted connection, read once then released
type Stream struct {
	Namespace []string
	fd        int
	reader    Reader
}

type MetricStorage struct {
	Accepted     atomic.Uint64 // connections accepted and registered
	AcceptErrors atomic.Uint64 // failed accepts or registrations
}

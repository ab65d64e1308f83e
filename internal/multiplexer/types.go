package multiplexer

import (
	"context"
	"minijournal/internal/lifecycle"
	"sync/atomic"
)

// Watched descriptor together with its readiness behavior.
// The endpoint owns the descriptor; Close releases it.
type Endpoint interface {
	Key() (fd int)
	Notify(ctx context.Context, registry Registry)
	Close() (err error)
}

// Membership operations available to endpoints during a readiness callback
type Registry interface {
	Register(endpoint Endpoint) (err error)
	Deregister(fd int) (err error)
	DeregisterEndpoint(endpoint Endpoint) (err error)
}

// Single-threaded epoll loop over a dynamic set of endpoints.
// Registry membership and the epoll watch set always mirror each other.
type Multiplexer struct {
	Namespace []string
	epfd      int
	endpoints map[int]Endpoint
	stop      *lifecycle.StopFlag
	Metrics   MetricStorage
}

type MetricStorage struct {
	Dispatched atomic.Uint64 // readiness events delivered to an endpoint
	Ignored    atomic.Uint64 // readiness events for descriptors no longer registered
	Panics     atomic.Uint64 // recovered callback panics
}

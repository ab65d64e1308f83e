package multiplexer

import (
	"context"
	"testing"

	"golang.org/x/sys/unix"
)

// Endpoint over one side of a socket pair.
// Drains its descriptor on every notification so level-triggered readiness clears.
type mockEndpoint struct {
	fd       int
	peer     int
	notified int
	closed   bool
	onNotify func(ctx context.Context, registry Registry)
}

func (m *mockEndpoint) Key() (fd int) {
	fd = m.fd
	return
}

func (m *mockEndpoint) Notify(ctx context.Context, registry Registry) {
	m.notified++

	buf := make([]byte, 64)
	for {
		n, err := unix.Read(m.fd, buf)
		if err != nil || n <= 0 {
			break
		}
	}

	if m.onNotify != nil {
		m.onNotify(ctx, registry)
	}
}

func (m *mockEndpoint) Close() (err error) {
	if m.closed {
		return
	}
	m.closed = true
	err = unix.Close(m.fd)
	return
}

// Makes the endpoint readable
func (m *mockEndpoint) poke(t *testing.T) {
	t.Helper()
	if _, err := unix.Write(m.peer, []byte("x")); err != nil {
		t.Fatalf("failed to write to peer: %v", err)
	}
}

func newMockEndpoint(t *testing.T) (endpoint *mockEndpoint) {
	t.Helper()

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_DGRAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("failed to create socket pair: %v", err)
	}

	endpoint = &mockEndpoint{fd: fds[0], peer: fds[1]}
	t.Cleanup(func() {
		unix.Close(fds[1])
		endpoint.Close()
	})
	return
}

func newTestMultiplexer(t *testing.T) (mux *Multiplexer) {
	t.Helper()

	mux, err := New([]string{"Test"})
	if err != nil {
		t.Fatalf("failed to create multiplexer: %v", err)
	}
	t.Cleanup(func() {
		mux.Close()
	})
	return
}

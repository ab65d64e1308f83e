package endpoint

import (
	"context"
	"testing"

	"golang.org/x/sys/unix"
)

// Counts calls without reading
type countingReader struct {
	calls int
}

func (r *countingReader) Read(ctx context.Context, fd int) {
	r.calls++
}

func TestStream_OneShot(t *testing.T) {
	mux := newTestMux(t)

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("failed to create socket pair: %v", err)
	}
	defer unix.Close(fds[1])

	counter := &countingReader{}
	stream, err := NewStream([]string{"Test"}, fds[0], counter)
	if err != nil {
		unix.Close(fds[0])
		t.Fatalf("failed to create stream: %v", err)
	}

	flags, err := unix.FcntlInt(uintptr(fds[0]), unix.F_GETFL, 0)
	if err != nil {
		t.Fatalf("failed to read descriptor flags: %v", err)
	}
	if flags&unix.O_NONBLOCK == 0 {
		t.Fatalf("expected stream descriptor to be non-blocking")
	}

	if err := mux.Register(stream); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	stream.Notify(context.Background(), mux)

	if counter.calls != 1 {
		t.Fatalf("expected exactly one read, got %d", counter.calls)
	}
	if mux.Len() != 0 {
		t.Fatalf("expected stream to deregister itself")
	}

	// Descriptor was released with the endpoint
	if _, err := unix.FcntlInt(uintptr(fds[0]), unix.F_GETFL, 0); err == nil {
		t.Fatalf("expected descriptor to be closed")
	}
}

func TestNewStream_BadDescriptor(t *testing.T) {
	stream, err := NewStream(nil, -1, nil)
	if err == nil || stream != nil {
		t.Fatalf("expected error for invalid descriptor")
	}
}

func TestNewStream_NamespaceIndependent(t *testing.T) {
	// Listener namespaces usually carry spare capacity from being built by append
	listenerNS := make([]string, 3, 8)
	copy(listenerNS, []string{"Collector", "Endpoint", "Stdout"})

	var streams []*Stream
	for i := 0; i < 2; i++ {
		fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
		if err != nil {
			t.Fatalf("failed to create socket pair: %v", err)
		}
		defer unix.Close(fds[1])

		stream, err := NewStream(listenerNS, fds[0], &countingReader{})
		if err != nil {
			unix.Close(fds[0])
			t.Fatalf("failed to create stream: %v", err)
		}
		defer stream.Close()
		streams = append(streams, stream)
	}

	streams[0].Namespace[3] = "Connection-1"

	if got := streams[1].Namespace[3]; got != "Stream" {
		t.Fatalf("sibling stream namespace changed to %q", got)
	}
	if got := listenerNS[:4][3]; got != "" {
		t.Fatalf("listener backing array written: %q", got)
	}
}

package endpoint

import (
	"bytes"
	"context"
	"minijournal/internal/externalio/file"
	"minijournal/internal/multiplexer"
	"minijournal/internal/processor"
	"minijournal/internal/reader"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// Requests loop exit after every read
type stoppingReader struct {
	inner Reader
	mux   *multiplexer.Multiplexer
}

func (r *stoppingReader) Read(ctx context.Context, fd int) {
	r.inner.Read(ctx, fd)
	r.mux.Stop()
}

func newTestMux(t *testing.T) (mux *multiplexer.Multiplexer) {
	t.Helper()

	mux, err := multiplexer.New([]string{"Test"})
	if err != nil {
		t.Fatalf("failed to create multiplexer: %v", err)
	}
	t.Cleanup(func() {
		mux.Close()
	})
	return
}

// Runs the loop on the calling goroutine with a safety stop
func runUntilStopped(t *testing.T, mux *multiplexer.Multiplexer) {
	t.Helper()

	safety := time.AfterFunc(5*time.Second, mux.Stop)
	defer safety.Stop()

	if err := mux.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
}

type pipelineKind int

const (
	syslogPipeline pipelineKind = iota
	journalPipeline
	streamPipeline
)

// Real reader -> pipeline -> output chain writing into a buffer
func newChain(mux *multiplexer.Multiplexer, kind pipelineKind) (chain Reader, out *bytes.Buffer) {
	out = &bytes.Buffer{}
	sink := file.NewOutput(nil, out)

	var pipeline processor.Pipeline
	switch kind {
	case syslogPipeline:
		pipeline = processor.NewSyslog(nil, sink)
	case journalPipeline:
		pipeline = processor.NewJournal(nil, sink)
	default:
		pipeline = processor.NewStream(nil, sink)
	}

	chain = &stoppingReader{inner: reader.New(nil, pipeline), mux: mux}
	return
}

func sendDatagram(t *testing.T, path string, payload string) {
	t.Helper()

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("failed to create client socket: %v", err)
	}
	defer unix.Close(fd)

	err = unix.Sendto(fd, []byte(payload), 0, &unix.SockaddrUnix{Name: path})
	if err != nil {
		t.Fatalf("failed to send datagram: %v", err)
	}
}

func connectStream(t *testing.T, path string) (fd int) {
	t.Helper()

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("failed to create client socket: %v", err)
	}
	t.Cleanup(func() {
		unix.Close(fd)
	})

	err = unix.Connect(fd, &unix.SockaddrUnix{Name: path})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	return
}

func socketPath(t *testing.T, name string) (path string) {
	path = filepath.Join(t.TempDir(), "journal", name)
	return
}

package reader

import (
	"bytes"
	"context"
	"errors"
	"minijournal/internal/global"
	"testing"

	"golang.org/x/sys/unix"
)

// Copies every chunk it is handed
type recordingPipeline struct {
	chunks [][]byte
	fail   bool
}

func (pipe *recordingPipeline) Handle(chunk []byte) (err error) {
	pipe.chunks = append(pipe.chunks, append([]byte{}, chunk...))
	if pipe.fail {
		err = errors.New("mock pipeline failure")
	}
	return
}

func newPair(t *testing.T, sockType int) (readFD int, writeFD int) {
	t.Helper()

	fds, err := unix.Socketpair(unix.AF_UNIX, sockType|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("failed to create socket pair: %v", err)
	}
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	readFD, writeFD = fds[0], fds[1]
	return
}

func TestChunkReader_Datagrams(t *testing.T) {
	tests := []struct {
		name      string
		datagrams []string
	}{
		{"single datagram", []string{"<13>hello\n"}},
		{"several datagrams", []string{"a", "bb", "ccc"}},
		{"no data", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readFD, writeFD := newPair(t, unix.SOCK_DGRAM)
			for _, dgram := range tt.datagrams {
				if _, err := unix.Write(writeFD, []byte(dgram)); err != nil {
					t.Fatalf("failed to write datagram: %v", err)
				}
			}

			pipe := &recordingPipeline{}
			instance := New([]string{global.NSTest}, pipe)
			instance.Read(context.Background(), readFD)

			if len(pipe.chunks) != len(tt.datagrams) {
				t.Fatalf("expected %d chunks, got %d", len(tt.datagrams), len(pipe.chunks))
			}
			for i, dgram := range tt.datagrams {
				if string(pipe.chunks[i]) != dgram {
					t.Errorf("chunk %d: expected %q, got %q", i, dgram, pipe.chunks[i])
				}
			}
		})
	}
}

func TestChunkReader_StreamSplitsIntoChunks(t *testing.T) {
	readFD, writeFD := newPair(t, unix.SOCK_STREAM)

	payload := bytes.Repeat([]byte("x"), global.ChunkSize*2+100)
	if _, err := unix.Write(writeFD, payload); err != nil {
		t.Fatalf("failed to write stream data: %v", err)
	}

	pipe := &recordingPipeline{}
	instance := New(nil, pipe)
	instance.Read(context.Background(), readFD)

	wantSizes := []int{global.ChunkSize, global.ChunkSize, 100}
	if len(pipe.chunks) != len(wantSizes) {
		t.Fatalf("expected %d chunks, got %d", len(wantSizes), len(pipe.chunks))
	}
	for i, size := range wantSizes {
		if len(pipe.chunks[i]) != size {
			t.Errorf("chunk %d: expected %d bytes, got %d", i, size, len(pipe.chunks[i]))
		}
	}

	if got := instance.Metrics.Bytes.Load(); got != uint64(len(payload)) {
		t.Errorf("expected %d bytes counted, got %d", len(payload), got)
	}
}

func TestChunkReader_PeerClosed(t *testing.T) {
	readFD, writeFD := newPair(t, unix.SOCK_STREAM)

	if _, err := unix.Write(writeFD, []byte("last words")); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	unix.Shutdown(writeFD, unix.SHUT_WR)

	pipe := &recordingPipeline{}
	New(nil, pipe).Read(context.Background(), readFD)

	if len(pipe.chunks) != 1 || string(pipe.chunks[0]) != "last words" {
		t.Fatalf("unexpected chunks %q", pipe.chunks)
	}
}

func TestChunkReader_PipelineErrorContinues(t *testing.T) {
	readFD, writeFD := newPair(t, unix.SOCK_DGRAM)
	for _, dgram := range []string{"one", "two"} {
		if _, err := unix.Write(writeFD, []byte(dgram)); err != nil {
			t.Fatalf("failed to write datagram: %v", err)
		}
	}

	pipe := &recordingPipeline{fail: true}
	New(nil, pipe).Read(context.Background(), readFD)

	if len(pipe.chunks) != 2 {
		t.Fatalf("expected reading to continue after pipeline error, got %d chunks", len(pipe.chunks))
	}
}

func TestChunkReader_BadDescriptor(t *testing.T) {
	pipe := &recordingPipeline{}
	instance := New(nil, pipe)
	instance.Read(context.Background(), -1)

	if len(pipe.chunks) != 0 {
		t.Fatalf("expected no chunks, got %d", len(pipe.chunks))
	}
	if instance.Metrics.ReadErrors.Load() != 1 {
		t.Fatalf("expected read error to be counted")
	}
}

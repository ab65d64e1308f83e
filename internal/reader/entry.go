// Fixed-size non-blocking reads from a ready descriptor
package reader

import (
	"context"
	"minijournal/internal/global"
	"minijournal/internal/logctx"
	"minijournal/internal/network"
	"minijournal/internal/processor"
	"slices"

	"golang.org/x/sys/unix"
)

func New(namespace []string, pipeline processor.Pipeline) (new *ChunkReader) {
	new = &ChunkReader{
		Namespace: append(slices.Clip(namespace), global.NSReader),
		pipeline:  pipeline,
		chunkSize: global.ChunkSize,
	}
	return
}

// Reads until the descriptor has nothing left (or errors), forwarding each non-empty chunk.
// Chunks are not retained between calls.
func (instance *ChunkReader) Read(ctx context.Context, fd int) {
	buffer := make([]byte, instance.chunkSize)

	for {
		n, err := unix.Read(fd, buffer)
		if err != nil {
			if !network.IsWouldBlock(err) {
				instance.Metrics.ReadErrors.Add(1)
				logctx.LogEvent(ctx, global.VerbosityDebug, global.WarnLog,
					"read from descriptor %d failed: %v\n", fd, err)
			}
			return
		}
		if n <= 0 {
			// Peer closed or zero-length datagram
			return
		}

		instance.Metrics.Chunks.Add(1)
		instance.Metrics.Bytes.Add(uint64(n))

		err = instance.pipeline.Handle(buffer[:n])
		if err != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"failed to forward %d byte chunk: %v\n", n, err)
		}
	}
}

package endpoint

import (
	"context"
	"minijournal/internal/global"
	"minijournal/internal/logctx"
	"minijournal/internal/multiplexer"
	"minijournal/internal/network"
	"slices"

	"golang.org/x/sys/unix"
)

// Wraps an accepted descriptor. Ownership moves to the endpoint only on success.
func NewStream(namespace []string, fd int, reader Reader) (endpoint *Stream, err error) {
	err = network.SetNonblock(fd)
	if err != nil {
		return
	}

	endpoint = &Stream{
		Namespace: append(slices.Clip(namespace), global.NSoStream),
		fd:        fd,
		reader:    reader,
	}
	return
}

func (endpoint *Stream) Key() (fd int) {
	fd = endpoint.fd
	return
}

// One-shot: reads what is available now, then removes itself from the registry.
// Data arriving after this wake is not read.
func (endpoint *Stream) Notify(ctx context.Context, registry multiplexer.Registry) {
	ctx = logctx.OverwriteCtxTag(ctx, endpoint.Namespace)

	endpoint.reader.Read(ctx, endpoint.fd)

	err := registry.DeregisterEndpoint(endpoint)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityDebug, global.WarnLog,
			"failed to release stream descriptor %d: %v\n", endpoint.fd, err)
	}
}

func (endpoint *Stream) Close() (err error) {
	err = unix.Close(endpoint.fd)
	return
}

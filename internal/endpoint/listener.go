package endpoint

import (
	"context"
	"fmt"
	"minijournal/internal/global"
	"minijournal/internal/logctx"
	"minijournal/internal/multiplexer"
	"minijournal/internal/network"
	"slices"

	"golang.org/x/sys/unix"
)

// Creates a bound listening stream socket at path
func NewListener(namespace []string, path string, reader Reader) (endpoint *Listener, err error) {
	fd, err := network.ListenUnix(path, unix.SOMAXCONN)
	if err != nil {
		return
	}

	endpoint = &Listener{
		Namespace: namespace,
		fd:        fd,
		path:      path,
		reader:    reader,
	}
	return
}

// Stdout capture socket
func NewStdout(namespace []string, socketPath string, reader Reader) (endpoint *Listener, err error) {
	endpoint, err = NewListener(append(slices.Clip(namespace), global.NSoStdout), socketPath, reader)
	if err != nil {
		err = fmt.Errorf("failed to create stdout socket: %v", err)
		return
	}
	return
}

func (endpoint *Listener) Key() (fd int) {
	fd = endpoint.fd
	return
}

// Accepts at most one pending connection and registers it as an ephemeral stream
func (endpoint *Listener) Notify(ctx context.Context, registry multiplexer.Registry) {
	ctx = logctx.OverwriteCtxTag(ctx, endpoint.Namespace)

	connFD, err := network.Accept(endpoint.fd)
	if err != nil {
		if network.IsWouldBlock(err) {
			// Nothing to accept
			return
		}
		endpoint.Metrics.AcceptErrors.Add(1)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
			"failed to accept connection on '%s': %v\n", endpoint.path, err)
		return
	}

	stream, err := NewStream(endpoint.Namespace, connFD, endpoint.reader)
	if err != nil {
		unix.Close(connFD)
		endpoint.Metrics.AcceptErrors.Add(1)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
			"failed to prepare accepted connection: %v\n", err)
		return
	}

	err = registry.Register(stream)
	if err != nil {
		stream.Close()
		endpoint.Metrics.AcceptErrors.Add(1)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
			"failed to register accepted connection: %v\n", err)
		return
	}

	endpoint.Metrics.Accepted.Add(1)
	logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
		"accepted connection on '%s' (fd %d)\n", endpoint.path, connFD)
}

func (endpoint *Listener) Close() (err error) {
	err = unix.Close(endpoint.fd)
	return
}

func (endpoint *Listener) Path() (path string) {
	path = endpoint.path
	return
}

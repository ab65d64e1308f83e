// Watched socket variants dispatched by the multiplexer
package endpoint

import (
	"context"
	"errors"
	"fmt"
	"minijournal/internal/ebpf"
	"minijournal/internal/global"
	"minijournal/internal/logctx"
	"minijournal/internal/multiplexer"
	"minijournal/internal/network"
	"os"
	"slices"

	"golang.org/x/sys/unix"
)

// Creates a bound non-blocking datagram socket at path
func NewDatagram(ctx context.Context, namespace []string, path string, reader Reader) (endpoint *Datagram, err error) {
	fd, err := network.OpenUnix(unix.SOCK_DGRAM, path)
	if err != nil {
		return
	}

	endpoint = &Datagram{
		Namespace: namespace,
		fd:        fd,
		path:      path,
		reader:    reader,
	}

	ctx = logctx.OverwriteCtxTag(ctx, namespace)

	// Oversized datagrams are cut down to one chunk before queueing
	err = ebpf.AttachTrimFilter(fd, global.ChunkSize)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
			"datagram trim filter unavailable for '%s': %v\n", path, err)
		err = nil
	}

	cookie, err := network.SocketCookie(fd)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
			"socket cookie unavailable for '%s': %v\n", path, err)
		err = nil
	} else {
		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"bound datagram socket '%s' (fd %d, cookie %d)\n", path, fd, cookie)
	}
	return
}

// Legacy syslog socket. When linkPath is set it is presented there as a symlink to socketPath.
func NewSyslog(ctx context.Context, namespace []string, socketPath string, linkPath string, reader Reader) (endpoint *Datagram, err error) {
	endpoint, err = NewDatagram(ctx, append(slices.Clip(namespace), global.NSoSyslog), socketPath, reader)
	if err != nil {
		err = fmt.Errorf("failed to create syslog socket: %v", err)
		return
	}

	if linkPath == "" {
		return
	}

	// Link failure leaves the socket usable at its primary path
	replaced, lerr := linkSocket(socketPath, linkPath)
	ctx = logctx.OverwriteCtxTag(ctx, endpoint.Namespace)
	if lerr != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
			"failed to link '%s' to syslog socket: %v\n", linkPath, lerr)
	} else if replaced != "" {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
			"replaced %s at '%s' with link to '%s'\n", replaced, linkPath, socketPath)
	}
	return
}

// Structured journal socket
func NewJournal(ctx context.Context, namespace []string, socketPath string, reader Reader) (endpoint *Datagram, err error) {
	endpoint, err = NewDatagram(ctx, append(slices.Clip(namespace), global.NSoJrnl), socketPath, reader)
	if err != nil {
		err = fmt.Errorf("failed to create journal socket: %v", err)
		return
	}
	return
}

// Points linkPath at target. An existing symlink or a socket nothing is bound to is replaced
// and described in replaced. Live sockets and any other file are left in place.
func linkSocket(target string, linkPath string) (replaced string, err error) {
	info, err := os.Lstat(linkPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		err = os.Symlink(target, linkPath)
		return
	case err != nil:
		return
	case info.Mode()&os.ModeSymlink != 0:
		current, _ := os.Readlink(linkPath)
		if current == target {
			return
		}
		replaced = fmt.Sprintf("symlink to '%s'", current)
	case info.Mode()&os.ModeSocket != 0:
		if !network.IsStaleUnix(linkPath) {
			err = fmt.Errorf("'%s' is a socket in use by another logger", linkPath)
			return
		}
		replaced = "stale socket"
	default:
		err = fmt.Errorf("'%s' exists and is not a socket or symlink (%s)", linkPath, info.Mode().Type())
		return
	}

	err = os.Remove(linkPath)
	if err != nil {
		replaced = ""
		return
	}
	err = os.Symlink(target, linkPath)
	return
}

func (endpoint *Datagram) Key() (fd int) {
	fd = endpoint.fd
	return
}

// Drains all queued datagrams
func (endpoint *Datagram) Notify(ctx context.Context, registry multiplexer.Registry) {
	ctx = logctx.OverwriteCtxTag(ctx, endpoint.Namespace)
	endpoint.reader.Read(ctx, endpoint.fd)
}

func (endpoint *Datagram) Close() (err error) {
	err = unix.Close(endpoint.fd)
	return
}

// Filesystem path the socket is bound to
func (endpoint *Datagram) Path() (path string) {
	path = endpoint.path
	return
}

// Thin wrappers over AF_UNIX socket system calls used by the transport endpoints
package network

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Creates a non-blocking close-on-exec unix socket bound to path.
// A stale socket file at path is removed first so it does not block binding.
func OpenUnix(sockType int, path string) (fd int, err error) {
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		err = fmt.Errorf("failed to create socket directory: %v", err)
		return
	}

	fd, err = unix.Socket(unix.AF_UNIX, sockType|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		err = fmt.Errorf("failed to create socket: %v", err)
		return
	}

	err = unix.Unlink(path)
	if err != nil && !errors.Is(err, unix.ENOENT) {
		unix.Close(fd)
		err = fmt.Errorf("failed to remove stale socket '%s': %v", path, err)
		return
	}

	err = unix.Bind(fd, &unix.SockaddrUnix{Name: path})
	if err != nil {
		unix.Close(fd)
		err = fmt.Errorf("failed to bind socket '%s': %v", path, err)
		return
	}
	return
}

// Creates a bound unix stream socket accepting connections
func ListenUnix(path string, backlog int) (fd int, err error) {
	fd, err = OpenUnix(unix.SOCK_STREAM, path)
	if err != nil {
		return
	}

	err = unix.Listen(fd, backlog)
	if err != nil {
		unix.Close(fd)
		err = fmt.Errorf("failed to listen on '%s': %v", path, err)
		return
	}
	return
}

// Accepts one pending connection as a non-blocking close-on-exec descriptor.
// Callers check IsWouldBlock for the "nothing pending" case.
func Accept(listenFD int) (fd int, err error) {
	fd, _, err = unix.Accept4(listenFD, unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC)
	return
}

func SetNonblock(fd int) (err error) {
	err = unix.SetNonblock(fd, true)
	if err != nil {
		err = fmt.Errorf("failed to set non-blocking mode: %v", err)
	}
	return
}

// True when a non-blocking operation had nothing to do right now
func IsWouldBlock(err error) (wouldBlock bool) {
	wouldBlock = errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
	return
}

// Retrieve unique identifier (cookie) for a given socket file descriptor.
func SocketCookie(fd int) (cookie uint64, err error) {
	cookie, err = unix.GetsockoptUint64(fd, unix.SOL_SOCKET, unix.SO_COOKIE)
	if err != nil {
		err = fmt.Errorf("getsockopt failed: %v", err)
		return
	}
	return
}

// True when path is a unix socket file nothing is bound to anymore.
// Any answer other than a refused connection counts as in use.
func IsStaleUnix(path string) (stale bool) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return
	}
	defer unix.Close(fd)

	err = unix.Connect(fd, &unix.SockaddrUnix{Name: path})
	stale = errors.Is(err, unix.ECONNREFUSED)
	return
}

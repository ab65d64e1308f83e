// Epoll-backed endpoint registry and readiness dispatch loop
package multiplexer

import (
	"fmt"
	"minijournal/internal/global"
	"minijournal/internal/lifecycle"
	"slices"

	"golang.org/x/sys/unix"
)

// Creates the epoll instance and arms the stop wake descriptor
func New(namespace []string) (new *Multiplexer, err error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		err = fmt.Errorf("failed to create epoll instance: %v", err)
		return
	}

	stop, err := lifecycle.NewStopFlag()
	if err != nil {
		unix.Close(epfd)
		return
	}

	// Wake descriptor is watched but never a registry member
	event := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(stop.FD())}
	err = unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, stop.FD(), &event)
	if err != nil {
		stop.Close()
		unix.Close(epfd)
		err = fmt.Errorf("failed to watch stop descriptor: %v", err)
		return
	}

	new = &Multiplexer{
		Namespace: append(slices.Clip(namespace), global.NSMux),
		epfd:      epfd,
		endpoints: make(map[int]Endpoint),
		stop:      stop,
	}
	return
}

// Requests loop exit. Safe from any goroutine.
// An in-flight callback completes; the loop exits before the next wait.
func (mux *Multiplexer) Stop() {
	mux.stop.Request()
}

// Number of registered endpoints
func (mux *Multiplexer) Len() (count int) {
	count = len(mux.endpoints)
	return
}

// Current occupant for a descriptor
func (mux *Multiplexer) Lookup(fd int) (endpoint Endpoint, registered bool) {
	endpoint, registered = mux.endpoints[fd]
	return
}

// Releases every registered endpoint, then the wake and epoll descriptors.
// Must not be called while Run is active.
func (mux *Multiplexer) Close() (err error) {
	if mux == nil {
		return
	}

	keys := make([]int, 0, len(mux.endpoints))
	for fd := range mux.endpoints {
		keys = append(keys, fd)
	}
	for _, fd := range keys {
		lerr := mux.Deregister(fd)
		if lerr != nil && err == nil {
			err = lerr
		}
	}

	lerr := mux.stop.Close()
	if lerr != nil && err == nil {
		err = fmt.Errorf("failed to close stop descriptor: %v", lerr)
	}

	lerr = unix.Close(mux.epfd)
	if lerr != nil && err == nil {
		err = fmt.Errorf("failed to close epoll instance: %v", lerr)
	}
	return
}

package multiplexer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Adds the endpoint under its key. A key already being watched is not re-armed
// and its previous occupant is replaced without being closed (same descriptor).
func (mux *Multiplexer) Register(endpoint Endpoint) (err error) {
	fd := endpoint.Key()

	_, registered := mux.endpoints[fd]
	if !registered {
		event := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
		err = unix.EpollCtl(mux.epfd, unix.EPOLL_CTL_ADD, fd, &event)
		if err != nil {
			err = fmt.Errorf("failed to watch descriptor %d: %v", fd, err)
			return
		}
	}

	mux.endpoints[fd] = endpoint
	return
}

// Stops watching the descriptor and releases its endpoint.
// Unknown descriptors are a no-op. Safe to call from the descriptor's own callback.
func (mux *Multiplexer) Deregister(fd int) (err error) {
	endpoint, registered := mux.endpoints[fd]
	if !registered {
		return
	}

	// Membership is dropped even if the kernel watch removal fails
	ctlErr := unix.EpollCtl(mux.epfd, unix.EPOLL_CTL_DEL, fd, nil)
	delete(mux.endpoints, fd)
	closeErr := endpoint.Close()

	if ctlErr != nil {
		err = fmt.Errorf("failed to unwatch descriptor %d: %v", fd, ctlErr)
		return
	}
	if closeErr != nil {
		err = fmt.Errorf("failed to close descriptor %d: %v", fd, closeErr)
		return
	}
	return
}

func (mux *Multiplexer) DeregisterEndpoint(endpoint Endpoint) (err error) {
	err = mux.Deregister(endpoint.Key())
	return
}

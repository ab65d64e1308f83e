package lifecycle

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"minijournal/internal/global"
	"minijournal/internal/logctx"
	"os"
	"os/signal"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Process-wide shutdown request.
// Written once (false->true) by the signal goroutine, read at the top of each loop iteration.
// The wake descriptor is an eventfd that becomes readable after a request so a blocked wait returns.
type StopFlag struct {
	requested atomic.Bool
	wakeFD    int
}

// Creates a stop flag with its wake descriptor
func NewStopFlag() (flag *StopFlag, err error) {
	fd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		err = fmt.Errorf("failed to create stop eventfd: %v", err)
		return
	}

	flag = &StopFlag{wakeFD: fd}
	return
}

// Descriptor to arm for read readiness alongside the watched sockets
func (flag *StopFlag) FD() (fd int) {
	fd = flag.wakeFD
	return
}

// Marks stop as requested and wakes any blocked waiter. Safe from any goroutine.
func (flag *StopFlag) Request() {
	flag.requested.Store(true)

	var counter [8]byte
	binary.NativeEndian.PutUint64(counter[:], 1)
	_, _ = unix.Write(flag.wakeFD, counter[:]) // EAGAIN only when counter is saturated, waiter is already woken
}

func (flag *StopFlag) Requested() (requested bool) {
	requested = flag.requested.Load()
	return
}

// Clears pending wakeups so the wake descriptor stops reporting readiness
func (flag *StopFlag) Drain() {
	var counter [8]byte
	for {
		_, err := unix.Read(flag.wakeFD, counter[:])
		if err != nil {
			return
		}
	}
}

func (flag *StopFlag) Close() (err error) {
	err = unix.Close(flag.wakeFD)
	return
}

// Installs signal handling for the readiness loop.
// SIGINT and SIGTERM request a stop, SIGHUP and SIGUSR1 (flush requests) are ignored.
// Returned release function stops delivery and the handling goroutine.
func HandleSignals(ctx context.Context, flag *StopFlag) (release func()) {
	ctx = logctx.AppendCtxTag(ctx, global.NSSignal)

	signal.Ignore(unix.SIGHUP, unix.SIGUSR1)

	// Channel for handling interrupt signals
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM)

	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-quit:
				return
			case sig := <-sigChan:
				logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Received signal: %v\n", sig)
				flag.Request()
			}
		}
	}()

	release = func() {
		signal.Stop(sigChan)
		close(quit)
	}
	return
}

// Reports whether an error from a blocking wait only means a signal interrupted it
func IsInterrupted(err error) (interrupted bool) {
	interrupted = errors.Is(err, unix.EINTR)
	return
}

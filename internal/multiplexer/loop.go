package multiplexer

import (
	"context"
	"fmt"
	"minijournal/internal/global"
	"minijournal/internal/lifecycle"
	"minijournal/internal/logctx"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// Waits for readiness and dispatches one endpoint per wake until a stop is requested.
// Returns an error only when waiting itself fails.
func (mux *Multiplexer) Run(ctx context.Context) (err error) {
	ctx = logctx.AppendCtxTag(ctx, global.NSMux)

	release := lifecycle.HandleSignals(ctx, mux.stop)
	defer release()

	for !mux.stop.Requested() {
		var fd int
		fd, err = mux.wait()
		if err != nil {
			if lifecycle.IsInterrupted(err) {
				err = nil
				continue
			}
			err = fmt.Errorf("failed waiting for readiness: %v", err)
			return
		}

		if fd < 0 {
			continue
		}
		if fd == mux.stop.FD() {
			mux.stop.Drain()
			continue
		}

		mux.dispatch(ctx, fd)
	}

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
		"Readiness loop stopped with %d registered endpoints\n", len(mux.endpoints))
	return
}

// Blocks for exactly one ready descriptor. Returns -1 when nothing was reported.
func (mux *Multiplexer) wait() (fd int, err error) {
	var events [1]unix.EpollEvent

	n, err := unix.EpollWait(mux.epfd, events[:], -1)
	if err != nil {
		fd = -1
		return
	}
	if n <= 0 {
		fd = -1
		return
	}

	fd = int(events[0].Fd)
	return
}

// Notifies the registered endpoint for fd once, passing the multiplexer as registry
func (mux *Multiplexer) dispatch(ctx context.Context, fd int) {
	endpoint, registered := mux.endpoints[fd]
	if !registered {
		// Deregistered earlier, stale readiness
		mux.Metrics.Ignored.Add(1)
		logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
			"ignoring readiness for unregistered descriptor %d\n", fd)
		return
	}

	defer func() {
		// Record panics and keep the loop running
		if fatalError := recover(); fatalError != nil {
			mux.Metrics.Panics.Add(1)
			stack := debug.Stack()
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in readiness callback for descriptor %d: %v\n%s", fd, fatalError, stack)
		}
	}()

	mux.Metrics.Dispatched.Add(1)
	endpoint.Notify(ctx, mux)
}

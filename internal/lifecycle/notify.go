// Handles process lifecycle agnostic of the transports being served (signals, stop requests, service manager notifications)
package lifecycle

import (
	"context"
	"fmt"
	"minijournal/internal/global"
	"minijournal/internal/logctx"

	"github.com/coreos/go-systemd/v22/daemon"
)

// Sends READY=1 to systemd to indicate service startup complete.
func NotifyReady(ctx context.Context) (err error) {
	err = notify(ctx, daemon.SdNotifyReady)
	return
}

// Sends STOPPING=1 to systemd to indicate shutdown has begun.
func NotifyStopping(ctx context.Context) (err error) {
	err = notify(ctx, daemon.SdNotifyStopping)
	return
}

// Sends custom status message to systemd for context.
func NotifyStatus(ctx context.Context, msg string) (err error) {
	err = notify(ctx, "STATUS="+msg)
	return
}

// Sends a raw sd_notify message.
// If NOTIFY_SOCKET is unset, this is a no-op and returns nil.
func notify(ctx context.Context, msg string) (err error) {
	sent, err := daemon.SdNotify(false, msg)
	if err != nil {
		err = fmt.Errorf("notify failed: %v", err)
		return
	}
	if !sent {
		// Not running under systemd
		return
	}

	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "Successfully notified systemd with message '%s'\n", msg)
	return
}

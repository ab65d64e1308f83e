package beats

import (
	"fmt"
	"minijournal/internal/global"
	"os"
	"slices"

	lumberjack "github.com/elastic/go-lumber/client/v2"
)

// Creates new beats (lumberjack) output module. Returns nil nil if no endpoint.
func NewOutput(namespace []string, endpoint string) (module *OutModule, err error) {
	if endpoint == "" {
		return
	}

	compression := lumberjack.CompressionLevel(0)
	timeout := lumberjack.Timeout(global.BeatsDialTimeout)

	ljClient, err := lumberjack.SyncDial(endpoint, compression, timeout)
	if err != nil {
		err = fmt.Errorf("failed connection to beats server: %w", err)
		return
	}

	module = newOutput(namespace, ljClient)
	return
}

func newOutput(namespace []string, sender eventSender) (module *OutModule) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "-"
	}

	module = &OutModule{
		Namespace: append(slices.Clip(namespace), global.NSoBeats),
		sink:      sender,
		hostname:  hostname,
	}
	return
}

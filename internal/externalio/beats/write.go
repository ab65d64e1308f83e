package beats

import (
	"fmt"
	"minijournal/internal/global"
	"time"
)

// Sends one record as a single event to the configured beats server
func (mod *OutModule) Write(record []byte) (err error) {
	if mod == nil {
		return
	}

	fields := map[string]interface{}{
		// Minimum required fields
		"@timestamp": time.Now(),
		"message":    string(record),

		// Common fields
		"host": map[string]interface{}{
			"name":     mod.hostname,
			"hostname": mod.hostname,
		},
		"agent": map[string]interface{}{
			"name": mod.hostname,
			// Meta fields identifying the collector itself
			"program": global.ProgBaseName,
			"version": global.ProgVersion,
			"type":    "filebeat",
			"pid":     global.PID,
		},
	}
	events := []interface{}{fields}

	sent, err := mod.sink.Send(events)
	if err != nil {
		mod.metrics.WriteErrors.Add(1)
		return
	}
	if sent != len(events) {
		mod.metrics.WriteErrors.Add(1)
		err = fmt.Errorf("beats server acknowledged %d of %d events", sent, len(events))
		return
	}

	mod.metrics.Sent.Add(uint64(sent))
	return
}

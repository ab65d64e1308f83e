package collector

import (
	"minijournal/internal/global"
	"os"
)

// Sets defaults for any missing values
func (cfg *Config) setDefaults() {
	// Sockets
	if cfg.SyslogPath == "" {
		cfg.SyslogPath = global.SyslogSocketPath
	}
	if cfg.JournalPath == "" {
		cfg.JournalPath = global.JournalSocketPath
	}
	if cfg.StdoutPath == "" {
		cfg.StdoutPath = global.StdoutSocketPath
	}
	if cfg.DevLogPath == "" {
		cfg.DevLogPath = global.DevLogPath
	}
	if cfg.DisableDevLog {
		cfg.DevLogPath = ""
	}

	// Outputs
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
}

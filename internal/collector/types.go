package collector

import (
	"context"
	"io"
	"minijournal/internal/metrics"
	"minijournal/internal/multiplexer"
	"minijournal/internal/processor"
	"time"
)

type Config struct {
	// Transport sockets
	SyslogPath  string
	DevLogPath  string // symlinked to SyslogPath
	JournalPath string
	StdoutPath  string

	DisableDevLog bool

	// Outputs (exactly one is used: beats, then file, then writer)
	BeatsEndpoint  string
	OutputFilePath string
	Output         io.Writer
}

// Record destination with lifecycle
type output interface {
	processor.Sink
	Shutdown() (err error)
	metricSource
}

type metricSource interface {
	CollectMetrics(interval time.Duration) (collection []metrics.Metric)
}

type Daemon struct {
	cfg       Config
	ctx       context.Context
	startedAt time.Time

	output    output
	sources   []metricSource // pipelines, readers, listeners
	Mux       *multiplexer.Multiplexer
	Endpoints []multiplexer.Endpoint

	// Filled on shutdown
	Metrics *metrics.Registry
}

// Fixed assembly of output, pipelines, readers, multiplexer and transport endpoints
package collector

import (
	"context"
	"fmt"
	"minijournal/internal/endpoint"
	"minijournal/internal/externalio/beats"
	"minijournal/internal/externalio/file"
	"minijournal/internal/global"
	"minijournal/internal/lifecycle"
	"minijournal/internal/logctx"
	"minijournal/internal/metrics"
	"minijournal/internal/multiplexer"
	"minijournal/internal/processor"
	"minijournal/internal/reader"
	"os"
	"slices"
	"time"
)

// Create new collector daemon instance
func NewDaemon(cfg Config) (new *Daemon) {
	new = &Daemon{
		cfg: cfg,
		ctx: context.Background(),
	}
	return
}

// Builds the collection chain and registers every endpoint that could be created.
// Endpoint failures are logged and skipped; output and multiplexer failures abort startup.
func (daemon *Daemon) Start(globalCtx context.Context) (err error) {
	// New context for the daemon
	daemon.ctx = context.WithValue(context.Background(), global.LoggerKey, logctx.GetLogger(globalCtx))
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSCollector)
	namespace := []string{global.NSCollector}

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")
	lifecycle.NotifyStatus(daemon.ctx, lifecycle.StatusStarting)

	daemon.cfg.setDefaults()
	daemon.startedAt = time.Now()
	global.PID = os.Getpid()

	// Stage 4 - Output
	daemon.output, err = newOutput(namespace, daemon.cfg)
	if err != nil {
		err = fmt.Errorf("failed starting output: %v", err)
		return
	}
	daemon.sources = append(daemon.sources, daemon.output)

	// Stage 3 - Pipelines
	syslogPipe := processor.NewSyslog(namespace, daemon.output)
	journalPipe := processor.NewJournal(namespace, daemon.output)
	streamPipe := processor.NewStream(namespace, daemon.output)

	// Stage 2 - Readers
	syslogReader := reader.New(syslogPipe.Namespace, syslogPipe)
	journalReader := reader.New(journalPipe.Namespace, journalPipe)
	streamReader := reader.New(streamPipe.Namespace, streamPipe)

	daemon.sources = append(daemon.sources,
		syslogPipe, journalPipe, streamPipe,
		syslogReader, journalReader, streamReader)

	// Stage 1 - Multiplexer and endpoints
	daemon.Mux, err = multiplexer.New(namespace)
	if err != nil {
		err = fmt.Errorf("failed creating multiplexer: %v", err)
		daemon.output.Shutdown()
		return
	}
	daemon.sources = append(daemon.sources, daemon.Mux)

	endpointNS := append(slices.Clip(namespace), global.NSEndpoint)

	syslogEndpoint, lerr := endpoint.NewSyslog(daemon.ctx, endpointNS, daemon.cfg.SyslogPath, daemon.cfg.DevLogPath, syslogReader)
	if lerr != nil {
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.ErrorLog, "%v\n", lerr)
	} else {
		daemon.register(syslogEndpoint)
	}

	journalEndpoint, lerr := endpoint.NewJournal(daemon.ctx, endpointNS, daemon.cfg.JournalPath, journalReader)
	if lerr != nil {
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.ErrorLog, "%v\n", lerr)
	} else {
		daemon.register(journalEndpoint)
	}

	stdoutEndpoint, lerr := endpoint.NewStdout(endpointNS, daemon.cfg.StdoutPath, streamReader)
	if lerr != nil {
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.ErrorLog, "%v\n", lerr)
	} else if daemon.register(stdoutEndpoint) {
		daemon.sources = append(daemon.sources, stdoutEndpoint)
	}

	if daemon.Mux.Len() == 0 {
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
			"no transport endpoints are active, waiting for stop signal only\n")
	}

	lifecycle.NotifyStatus(daemon.ctx, fmt.Sprintf("%s (%d endpoints)", lifecycle.StatusRunning, daemon.Mux.Len()))
	lifecycle.NotifyReady(daemon.ctx)

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Startup complete.\n")
	return
}

// Selects the single active output
func newOutput(namespace []string, cfg Config) (out output, err error) {
	outputNS := append(slices.Clip(namespace), global.NSOut)

	if cfg.BeatsEndpoint != "" {
		var mod *beats.OutModule
		mod, err = beats.NewOutput(outputNS, cfg.BeatsEndpoint)
		if err != nil {
			return
		}
		out = mod
		return
	}

	if cfg.OutputFilePath != "" {
		var mod *file.OutModule
		mod, err = file.OpenOutput(outputNS, cfg.OutputFilePath)
		if err != nil {
			return
		}
		out = mod
		return
	}

	out = file.NewOutput(outputNS, cfg.Output)
	return
}

// Registers endpoint with the multiplexer, releasing it on failure
func (daemon *Daemon) register(ep multiplexer.Endpoint) (registered bool) {
	err := daemon.Mux.Register(ep)
	if err != nil {
		ep.Close()
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.ErrorLog,
			"failed to register endpoint: %v\n", err)
		return
	}

	daemon.Endpoints = append(daemon.Endpoints, ep)
	registered = true
	return
}

// Blocking readiness loop. Returns when a stop is requested or waiting fails.
func (daemon *Daemon) Run() (err error) {
	err = daemon.Mux.Run(daemon.ctx)
	return
}

// Requests the readiness loop to exit
func (daemon *Daemon) Stop() {
	if daemon.Mux != nil {
		daemon.Mux.Stop()
	}
}

// Releases every endpoint and the output. Must be called after Run returns.
func (daemon *Daemon) Shutdown() {
	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Daemon shutdown started...\n")
	lifecycle.NotifyStopping(daemon.ctx)
	lifecycle.NotifyStatus(daemon.ctx, lifecycle.StatusStopping)

	daemon.summarize()

	if daemon.Mux != nil {
		err := daemon.Mux.Close()
		if err != nil {
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"failed to release endpoints: %v\n", err)
		}
	}

	if daemon.output != nil {
		err := daemon.output.Shutdown()
		if err != nil {
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"output did not shutdown gracefully: %v\n", err)
		}
	}

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Daemon shutdown completed successfully\n")
}

// Collects lifetime counters into a registry and logs them
func (daemon *Daemon) summarize() {
	daemon.Metrics = metrics.New()

	interval := time.Since(daemon.startedAt)
	timeSlice := daemon.Metrics.NewTimeSlice(time.Now(), 0)
	for _, source := range daemon.sources {
		daemon.Metrics.Add(timeSlice, source.CollectMetrics(interval))
	}

	ctx := logctx.AppendCtxTag(daemon.ctx, global.NSMetric)
	for _, metric := range daemon.Metrics.Search("", nil, timeSlice, timeSlice) {
		logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog, "%s\n", metric.String())
	}
}

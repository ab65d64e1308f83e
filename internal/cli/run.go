package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"minijournal/internal/collector"
	"minijournal/internal/global"
	"minijournal/internal/logctx"
	"os"
)

// Parses run command arguments into daemon configuration
func parseRunArgs(commandname string, args []string, usageOut io.Writer) (cfg collector.Config, err error) {
	commandFlags := flag.NewFlagSet(commandname, flag.ContinueOnError)
	commandFlags.SetOutput(usageOut)
	SetGlobalArguments(commandFlags)

	commandFlags.StringVar(&cfg.BeatsEndpoint, "beats", "", "Send records to a Beats/Logstash server <host:port> instead of stdout")
	commandFlags.StringVar(&cfg.OutputFilePath, "output", "", "Append records to a file instead of stdout")
	commandFlags.BoolVar(&cfg.DisableDevLog, "no-devlog", false, "Do not link "+global.DevLogPath+" to the syslog socket")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	err = commandFlags.Parse(args)
	if err != nil {
		return
	}

	if commandFlags.NArg() > 0 {
		err = fmt.Errorf("unexpected arguments: %v", commandFlags.Args())
		return
	}
	if cfg.BeatsEndpoint != "" && cfg.OutputFilePath != "" {
		err = fmt.Errorf("only one of --beats and --output can be used")
		return
	}
	return
}

// Runs the collector until stopped. Returns the process exit code.
func RunMode(ctx context.Context, commandname string, args []string) (exitCode int) {
	cfg, err := parseRunArgs(commandname, args, os.Stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		exitCode = 1
		return
	}
	logctx.SetLogLevel(ctx, global.Verbosity)

	daemon := collector.NewDaemon(cfg)
	err = daemon.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting collector daemon: %v\n", err)
		exitCode = 1
		return
	}

	err = daemon.Run()
	daemon.Shutdown()
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "%v\n", err)
		exitCode = 1
		return
	}
	return
}

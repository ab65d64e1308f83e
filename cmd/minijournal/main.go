package main

import (
	"context"
	"flag"
	"fmt"
	"minijournal/internal/cli"
	"minijournal/internal/global"
	"minijournal/internal/logctx"
	"os"
	"runtime"

	"golang.org/x/term"
)

func main() {
	cliOpts := cli.DefineOptions()
	global.CmdOpts = cliOpts

	// Interactive sessions get progress messages by default
	global.Verbosity = global.VerbosityStandard
	if term.IsTerminal(int(os.Stderr.Fd())) {
		global.Verbosity = global.VerbosityProgress
	}

	commandFlags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cli.SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
	}
	commandFlags.Parse(os.Args[1:])

	// Retrieve command and args, collecting is the default
	command := "run"
	args := commandFlags.Args()
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	// Setting global logging
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logctx.NewLogger("global", global.Verbosity, ctx.Done()) // New logger tied to global
	ctx = logctx.WithLogger(ctx, logger)                               // Add logger to global ctx
	logctx.StartWatcher(logger, os.Stderr)                             // Stdout carries the records

	var exitCode int

	// Process commands
	switch command {
	case "run":
		exitCode = cli.RunMode(ctx, command, args)
	case "version":
		if len(args) > 0 && (args[0] == "--verbosity" || args[0] == "-v") {
			fmt.Printf("%s %s\n", global.ProgBaseName, global.ProgVersion)
			fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		} else {
			fmt.Println(global.ProgVersion)
		}
	default:
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
		exitCode = 1
	}

	// Finish up any stderr writes for global logger
	cancel()
	logger.Wake()
	logger.Wait()

	os.Exit(exitCode)
}

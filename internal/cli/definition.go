package cli

import "minijournal/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Minimal Local Log Collector (minijournal)",
		FullDescription: "  Collects syslog, journal and stdout stream messages from local sockets onto one output",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Collecting
	root.ChildCommands["run"] = &global.CommandSet{
		CommandName:     "run",
		Description:     "Collect Messages (default)",
		FullDescription: "Binds the local logging sockets and writes every received message to the configured output until SIGINT/SIGTERM",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}

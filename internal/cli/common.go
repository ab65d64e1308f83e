package cli

import (
	"flag"
	"minijournal/internal/global"
)

// Binds both verbosity spellings to global.Verbosity, keeping its current value as default
func SetGlobalArguments(fs *flag.FlagSet) {
	fs.IntVar(&global.Verbosity, "v", global.Verbosity, "Increase detailed progress messages (Higher is more verbose) <0...5>")
	fs.IntVar(&global.Verbosity, "verbosity", global.Verbosity, "Increase detailed progress messages (Higher is more verbose) <0...5>")
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"minijournal/internal/global"
	"os"
	"sort"
	"strings"
)

const (
	RootCLICommand  string = "root"
	helpMenuTrailer string = `
Sockets:
  ` + global.SyslogSocketPath + ` (syslog, linked from ` + global.DevLogPath + `)
  ` + global.JournalSocketPath + ` (journal)
  ` + global.StdoutSocketPath + ` (stdout streams)
Records are written to stdout, one per line, each preceded by a newline.
`
)

// Prints the help menu for a command to the flag set output (stderr unless set)
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	out := fs.Output()

	cmdSet := rootCmd
	if command != "" && command != RootCLICommand {
		sub, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Fprintf(out, "Unknown command: %s\n", command)
			return
		}
		cmdSet = sub
	}

	usage := []string{os.Args[0]}
	if cmdSet != rootCmd {
		usage = append(usage, cmdSet.CommandName)
	}
	if len(cmdSet.ChildCommands) > 0 {
		usage = append(usage, "[command]")
	}
	usage = append(usage, "[options]")
	if cmdSet.UsageOption != "" {
		usage = append(usage, cmdSet.UsageOption)
	}
	fmt.Fprintf(out, "Usage: %s\n\n", strings.Join(usage, " "))

	if cmdSet == rootCmd {
		fmt.Fprintf(out, "%s\n%s\n\n", cmdSet.Description, cmdSet.FullDescription)
	} else if cmdSet.FullDescription != "" {
		fmt.Fprintf(out, "  Description:\n    %s\n\n", cmdSet.FullDescription)
	}

	if len(cmdSet.ChildCommands) > 0 {
		names := make([]string, 0, len(cmdSet.ChildCommands))
		for name := range cmdSet.ChildCommands {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([][2]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, [2]string{name, cmdSet.ChildCommands[name].Description})
		}
		fmt.Fprintln(out, "  Commands:")
		printColumns(out, rows, "    ", " - ")
		fmt.Fprintln(out)
	}

	printFlagOptions(out, fs)

	if cmdSet == rootCmd {
		fmt.Fprint(out, helpMenuTrailer)
	}
}

// Prints flags sharing a usage text on one line, short names first
func printFlagOptions(out io.Writer, fs *flag.FlagSet) {
	type option struct {
		names      []string
		defaultVal string
	}

	byUsage := make(map[string]*option)
	var order []string
	fs.VisitAll(func(f *flag.Flag) {
		name := "--" + f.Name
		if len(f.Name) == 1 {
			name = "-" + f.Name
		}

		opt, seen := byUsage[f.Usage]
		if !seen {
			opt = &option{defaultVal: f.DefValue}
			byUsage[f.Usage] = opt
			order = append(order, f.Usage)
		}
		opt.names = append(opt.names, name)
	})

	rows := make([][2]string, 0, len(order))
	for _, usage := range order {
		opt := byUsage[usage]
		sort.Slice(opt.names, func(a, b int) bool {
			return len(opt.names[a]) < len(opt.names[b])
		})

		left := strings.Join(opt.names, ", ")
		if strings.HasPrefix(opt.names[0], "--") {
			// Long-only flags line up under the long half of "-v, --verbosity"
			left = "    " + left
		}

		desc := usage
		switch opt.defaultVal {
		case "", "false", "0":
		default:
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}
		rows = append(rows, [2]string{left, desc})
	}
	sort.Slice(rows, func(a, b int) bool {
		return strings.ToLower(strings.TrimLeft(rows[a][0], " -")) < strings.ToLower(strings.TrimLeft(rows[b][0], " -"))
	})

	fmt.Fprintln(out, "  Options:")
	printColumns(out, rows, "  ", "  ")
}

// Prints two columns with the second aligned after the widest first column
func printColumns(out io.Writer, rows [][2]string, indent string, sep string) {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s%-*s%s%s\n", indent, width, row[0], sep, row[1])
	}
}

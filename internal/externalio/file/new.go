package file

import (
	"fmt"
	"io"
	"minijournal/internal/global"
	"os"
	"slices"
)

// Creates new output module around an existing writer (normally stdout).
// The writer is not closed on shutdown.
func NewOutput(namespace []string, sink io.Writer) (module *OutModule) {
	module = &OutModule{
		Namespace: append(slices.Clip(namespace), global.NSoFile),
		sink:      sink,
	}
	return
}

// Creates new file output module. Returns nil nil if no path.
func OpenOutput(namespace []string, filePath string) (module *OutModule, err error) {
	if filePath == "" {
		return
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		err = fmt.Errorf("failed to open output file: %v", err)
		return
	}

	module = NewOutput(namespace, file)
	module.closer = file
	return
}

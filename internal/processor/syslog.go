package processor

import "minijournal/internal/global"

// Removes the leading '<PRI>' header and trailing newlines.
// Malformed headers are skipped on a best-effort basis.
func (handler *SyslogHandler) Handle(chunk []byte) (err error) {
	start, end := stripSyslogFraming(chunk)
	if start != 0 || end != len(chunk) {
		handler.Metrics.Reframed.Add(1)
	}

	err = forward(handler.sink, chunk[start:end], &handler.Metrics)
	return
}

// Returns the half-open range of the message body
func stripSyslogFraming(chunk []byte) (start int, end int) {
	if len(chunk) > 0 && chunk[start] == '<' {
		start++

		for start < len(chunk) && chunk[start] >= '0' && chunk[start] <= '9' {
			start++
		}

		if start < len(chunk) && chunk[start] == '>' {
			start++
		}
	}

	end = len(chunk)
	for end > start && chunk[end-1] == global.RecordSeparator {
		end--
	}
	return
}

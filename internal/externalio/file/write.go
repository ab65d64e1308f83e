package file

import "minijournal/internal/global"

var separator = []byte{global.RecordSeparator}

// Writes one record: the separator, then the payload, as two separate writes.
// Short writes are not retried.
func (mod *OutModule) Write(record []byte) (err error) {
	if mod == nil {
		return
	}

	_, err = mod.sink.Write(separator)
	if err != nil {
		mod.metrics.WriteErrors.Add(1)
		return
	}

	_, err = mod.sink.Write(record)
	if err != nil {
		mod.metrics.WriteErrors.Add(1)
		return
	}

	mod.metrics.Records.Add(1)
	mod.metrics.Bytes.Add(uint64(len(record)))
	return
}

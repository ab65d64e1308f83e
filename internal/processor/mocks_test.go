package processor

import "errors"

// Captures a copy of every record written
type recordingSink struct {
	records [][]byte
	fail    bool
}

func (sink *recordingSink) Write(record []byte) (err error) {
	if sink.fail {
		err = errors.New("mock sink failure")
		return
	}
	sink.records = append(sink.records, append([]byte{}, record...))
	return
}

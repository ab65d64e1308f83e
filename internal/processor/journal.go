package processor

// Flattens multi-line (KEY=VALUE per line) messages onto one line in place
func (handler *JournalHandler) Handle(chunk []byte) (err error) {
	var replaced bool
	for i := range chunk {
		if chunk[i] == '\n' {
			chunk[i] = ' '
			replaced = true
		}
	}
	if replaced {
		handler.Metrics.Reframed.Add(1)
	}

	err = forward(handler.sink, chunk, &handler.Metrics)
	return
}

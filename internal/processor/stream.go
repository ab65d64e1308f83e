package processor

// Forwards stream data unmodified
func (handler *StreamHandler) Handle(chunk []byte) (err error) {
	err = forward(handler.sink, chunk, &handler.Metrics)
	return
}

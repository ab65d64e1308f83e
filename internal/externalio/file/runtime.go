package file

// Gracefully stops module
func (mod *OutModule) Shutdown() (err error) {
	if mod == nil {
		return
	}
	if mod.closer != nil {
		err = mod.closer.Close()
	}
	return
}

package ebpf

const (
	FilterName    string = "trim_datagram" // kernel program names are limited to 15 characters
	FilterLicense string = "GPL"

	skbLenOffset int16  = 0 // offsetof(struct __sk_buff, len)
	keepLabel    string = "keep"
)

package lifecycle

const (
	EnvNameNotifySocket string = "NOTIFY_SOCKET"
	StatusStarting      string = "Opening transport sockets"
	StatusRunning       string = "Processing requests..."
	StatusStopping      string = "Shutting down"
)

package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion  string = "v0.3.1"
	ProgBaseName string = "minijournal"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // Namespace tags, broad to specific, appended as work moves into a component

	// Well-known local transport paths
	JournalRuntimeDir string = "/run/systemd/journal"
	SyslogSocketPath  string = JournalRuntimeDir + "/dev-log" // Connectionless legacy syslog
	DevLogPath        string = "/dev/log"                     // Traditional syslog path, symlinked to SyslogSocketPath
	JournalSocketPath string = JournalRuntimeDir + "/socket"  // Connectionless structured journal messages
	StdoutSocketPath  string = JournalRuntimeDir + "/stdout"  // Connection oriented stdout capture

	// Size of a single non-blocking read from any transport socket
	ChunkSize int = 2048

	// Record separator written ahead of every record
	RecordSeparator byte = '\n'

	// Beats sink
	BeatsDialTimeout time.Duration = 3 * time.Second

	// Namespacing Name Components
	NSMetric    string = "Metrics"
	NSTest      string = "Test"
	NSCollector string = "Collector"
	NSMux       string = "Multiplexer"
	NSEndpoint  string = "Endpoint"
	NSReader    string = "Reader"
	NSOut       string = "Output"
	NSSignal    string = "Signal"
	NSoSyslog   string = "Syslog"
	NSoJrnl     string = "Journal"
	NSoStdout   string = "Stdout"
	NSoStream   string = "Stream"
	NSoBeats    string = "Beats"
	NSoFile     string = "File"
)

package logctx

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// Log Event Structure
type Event struct {
	Timestamp time.Time
	Severity  string
	Tags      []string
	Message   string
}

// Logger Struct
type Logger struct {
	ID         string
	CreatedAt  time.Time
	queue      *queue.Queue // FIFO of Event, guarded by mutex
	mutex      sync.Mutex
	cond       *sync.Cond // condition to signal new events
	Done       <-chan struct{}
	PrintLevel int             // Level at which the message should be recorded
	wg         *sync.WaitGroup // Holds main execution threads until log watchers are done handling events
}

// Tracks repeated messages for the watcher
type dedupState struct {
	lastMsg          string
	repeatCount      int
	lastSuppressTime time.Time
}

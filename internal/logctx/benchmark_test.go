package logctx

import (
	"context"
	"minijournal/internal/global"
	"testing"
)

func BenchmarkLogEvent_SingleProducer(b *testing.B) {
	done := make(chan struct{})
	defer close(done)

	ctx := New(context.Background(), global.NSTest, global.VerbosityDebug, done)
	logger := GetLogger(ctx)
	if logger == nil {
		b.Fatal("logger is nil")
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "benchmark message %d", i)

		// Keep the buffer bounded without a watcher
		if i%1024 == 0 {
			logger.mutex.Lock()
			for logger.queue.Length() > 0 {
				logger.queue.Remove()
			}
			logger.mutex.Unlock()
		}
	}
}

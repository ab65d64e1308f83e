package processor

import (
	"minijournal/internal/global"
	"testing"
)

func TestNew_NamespacesIndependent(t *testing.T) {
	parent := make([]string, 2, 8)
	copy(parent, []string{global.NSCollector, "Processor"})

	sink := &recordingSink{}
	syslog := NewSyslog(parent, sink)
	journal := NewJournal(parent, sink)
	stream := NewStream(parent, sink)

	tests := []struct {
		name      string
		namespace []string
		want      string
	}{
		{"syslog", syslog.Namespace, global.NSoSyslog},
		{"journal", journal.Namespace, global.NSoJrnl},
		{"stream", stream.Namespace, global.NSoStream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.namespace) != 3 || tt.namespace[2] != tt.want {
				t.Fatalf("namespace = %v, want suffix %q", tt.namespace, tt.want)
			}
		})
	}
	if got := parent[:3][2]; got != "" {
		t.Fatalf("parent backing array written: %q", got)
	}
}

package beats

import (
	"errors"
	"minijournal/internal/global"
	"testing"
	"time"
)

type mockSender struct {
	events []interface{}
	ack    int // events acknowledged per send, -1 for all
	err    error
	closed bool
}

func (m *mockSender) Send(events []interface{}) (n int, err error) {
	if m.err != nil {
		err = m.err
		return
	}
	m.events = append(m.events, events...)
	n = len(events)
	if m.ack >= 0 {
		n = m.ack
	}
	return
}

func (m *mockSender) Close() (err error) {
	m.closed = true
	return
}

func TestOutModule_Write(t *testing.T) {
	tests := []struct {
		name       string
		sender     *mockSender
		record     string
		wantErr    bool
		wantSent   uint64
		wantFailed uint64
	}{
		{"acknowledged", &mockSender{ack: -1}, "hello", false, 1, 0},
		{"empty record", &mockSender{ack: -1}, "", false, 1, 0},
		{"send failure", &mockSender{ack: -1, err: errors.New("connection reset")}, "hello", true, 0, 1},
		{"not acknowledged", &mockSender{ack: 0}, "hello", true, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := newOutput([]string{global.NSTest}, tt.sender)

			err := mod.Write([]byte(tt.record))
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			for _, metric := range mod.CollectMetrics(time.Second) {
				switch metric.Name {
				case "records_written":
					if metric.Value.Raw.(uint64) != tt.wantSent {
						t.Errorf("expected %d sent, got %v", tt.wantSent, metric.Value.Raw)
					}
				case "write_errors":
					if metric.Value.Raw.(uint64) != tt.wantFailed {
						t.Errorf("expected %d errors, got %v", tt.wantFailed, metric.Value.Raw)
					}
				}
			}

			if tt.sender.err != nil {
				return
			}
			if len(tt.sender.events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(tt.sender.events))
			}
			fields := tt.sender.events[0].(map[string]interface{})
			if fields["message"] != tt.record {
				t.Errorf("expected message %q, got %v", tt.record, fields["message"])
			}
			agent := fields["agent"].(map[string]interface{})
			if agent["program"] != global.ProgBaseName {
				t.Errorf("expected program %q, got %v", global.ProgBaseName, agent["program"])
			}
		})
	}
}

func TestShutdown(t *testing.T) {
	sender := &mockSender{ack: -1}
	mod := newOutput(nil, sender)

	if err := mod.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sender.closed {
		t.Fatalf("expected sender to be closed")
	}

	var nilMod *OutModule
	if err := nilMod.Shutdown(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestNewOutput_NoEndpoint(t *testing.T) {
	mod, err := NewOutput(nil, "")
	if mod != nil || err != nil {
		t.Fatalf("expected nil module and error, got %v %v", mod, err)
	}
}

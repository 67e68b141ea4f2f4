package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

// recordingLogger captures log entries for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields []Field
}

func (l *recordingLogger) record(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Info(msg string, fields ...Field)  { l.record("info", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...Field) { l.record("error", msg, fields) }
func (l *recordingLogger) Debug(msg string, fields ...Field) { l.record("debug", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...Field)  { l.record("warn", msg, fields) }

func (l *recordingLogger) last(t *testing.T) logEntry {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		t.Fatal("no log entries recorded")
	}
	return l.entries[len(l.entries)-1]
}

func fieldValue(fields []Field, key string) (any, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func TestLogging(t *testing.T) {
	t.Run("success logs at debug with command name", func(t *testing.T) {
		logger := &recordingLogger{}
		exec := Logging(logger)(func(ctx context.Context, cmd protocol.Command) (string, error) {
			return "", nil
		})

		if _, err := exec(context.Background(), protocol.Pause{State: true}); err != nil {
			t.Fatalf("exec failed: %v", err)
		}

		entry := logger.last(t)
		if entry.level != "debug" {
			t.Errorf("level = %q, want debug", entry.level)
		}
		if name, _ := fieldValue(entry.fields, "command"); name != "pause" {
			t.Errorf("command field = %v, want pause", name)
		}
		if _, ok := fieldValue(entry.fields, "duration"); !ok {
			t.Error("duration field missing")
		}
	})

	t.Run("failure logs at error with the error text", func(t *testing.T) {
		logger := &recordingLogger{}
		exec := Logging(logger)(func(ctx context.Context, cmd protocol.Command) (string, error) {
			return "", errors.New("connection reset")
		})

		_, err := exec(context.Background(), protocol.Status{})
		if err == nil {
			t.Fatal("exec succeeded, want error")
		}

		entry := logger.last(t)
		if entry.level != "error" {
			t.Errorf("level = %q, want error", entry.level)
		}
		if msg, _ := fieldValue(entry.fields, "error"); msg != "connection reset" {
			t.Errorf("error field = %v, want connection reset", msg)
		}
	})

	t.Run("includes command id when present", func(t *testing.T) {
		logger := &recordingLogger{}
		exec := Chain(
			CommandIDWithGenerator(func() string { return "fixed-id" }),
			Logging(logger),
		)(func(ctx context.Context, cmd protocol.Command) (string, error) {
			return "", nil
		})

		if _, err := exec(context.Background(), protocol.Status{}); err != nil {
			t.Fatalf("exec failed: %v", err)
		}

		entry := logger.last(t)
		if id, _ := fieldValue(entry.fields, "command_id"); id != "fixed-id" {
			t.Errorf("command_id field = %v, want fixed-id", id)
		}
	})
}

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

// Logger is the interface for structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logging returns middleware that logs every command.
// Successful commands are logged at debug level, failures at error level.
func Logging(logger Logger) Middleware {
	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, cmd protocol.Command) (string, error) {
			start := time.Now()

			body, err := next(ctx, cmd)

			duration := time.Since(start)

			fields := []Field{
				F("command", protocol.Name(cmd)),
				F("duration", duration),
			}

			if id := CommandIDFromContext(ctx); id != "" {
				fields = append(fields, F("command_id", id))
			}

			if err != nil {
				fields = append(fields, F("error", err.Error()))
				logger.Error("command failed", fields...)
			} else {
				logger.Debug("command completed", fields...)
			}

			return body, err
		}
	}
}

// NopLogger is a logger that discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Warn(msg string, fields ...Field)  {}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	L *slog.Logger
}

func (s SlogLogger) log(level slog.Level, msg string, fields []Field) {
	attrs := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		attrs = append(attrs, f.Key, f.Value)
	}
	s.L.Log(context.Background(), level, msg, attrs...)
}

func (s SlogLogger) Info(msg string, fields ...Field)  { s.log(slog.LevelInfo, msg, fields) }
func (s SlogLogger) Error(msg string, fields ...Field) { s.log(slog.LevelError, msg, fields) }
func (s SlogLogger) Debug(msg string, fields ...Field) { s.log(slog.LevelDebug, msg, fields) }
func (s SlogLogger) Warn(msg string, fields ...Field)  { s.log(slog.LevelWarn, msg, fields) }

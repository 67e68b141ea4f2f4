package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const commandIDKey contextKey = "commandID"

// CommandID returns middleware that injects a unique command ID into the
// context. If a command ID already exists in the context, it is preserved.
func CommandID() Middleware {
	return CommandIDWithGenerator(generateID)
}

// CommandIDWithGenerator returns middleware that uses a custom ID generator.
func CommandIDWithGenerator(generator func() string) Middleware {
	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, cmd protocol.Command) (string, error) {
			if existing := CommandIDFromContext(ctx); existing != "" {
				return next(ctx, cmd)
			}

			id := generator()
			ctx = ContextWithCommandID(ctx, id)
			return next(ctx, cmd)
		}
	}
}

// CommandIDFromContext returns the command ID from the context, or empty
// string if not set.
func CommandIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(commandIDKey).(string)
	return id
}

// ContextWithCommandID returns a new context with the command ID set.
func ContextWithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKey, id)
}

// generateID generates a random command ID.
// Uses crypto/rand for better uniqueness than time-based IDs.
func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

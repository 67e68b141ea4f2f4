package middleware

import (
	"context"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

// ExecFunc sends one command and returns the reply body, without the
// terminator line.
type ExecFunc func(ctx context.Context, cmd protocol.Command) (string, error)

// Middleware wraps an executor with additional behavior.
type Middleware func(next ExecFunc) ExecFunc

// Chain composes multiple middleware into a single middleware.
// Middleware are applied in order, so Chain(m1, m2, m3) results in
// m1 wrapping m2 wrapping m3 wrapping the final executor.
func Chain(middlewares ...Middleware) Middleware {
	return func(final ExecFunc) ExecFunc {
		// Apply middleware in reverse order so they execute in order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

// Timeout returns middleware that enforces a per-command deadline.
// If the command does not complete within the specified duration,
// the context is cancelled and context.DeadlineExceeded is returned.
func Timeout(d time.Duration) Middleware {
	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, cmd protocol.Command) (string, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, cmd)
		}
	}
}

package middleware

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

// PanicHandler is called when a panic is recovered.
type PanicHandler func(ctx context.Context, cmd protocol.Command, panicVal any) (string, error)

// Recover returns middleware that catches panics and converts them to
// errors. The panic value is included in the error message for debugging.
func Recover() Middleware {
	return RecoverWithHandler(defaultPanicHandler)
}

// RecoverWithHandler returns middleware that catches panics and calls the
// provided handler. This allows for custom panic handling such as logging
// or alerting.
func RecoverWithHandler(handler PanicHandler) Middleware {
	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, cmd protocol.Command) (body string, err error) {
			defer func() {
				if r := recover(); r != nil {
					body, err = handler(ctx, cmd, r)
				}
			}()
			return next(ctx, cmd)
		}
	}
}

// defaultPanicHandler converts a panic value to an error.
func defaultPanicHandler(_ context.Context, cmd protocol.Command, panicVal any) (string, error) {
	return "", fmt.Errorf("mpd: panic in %s: %v", protocol.Name(cmd), panicVal)
}

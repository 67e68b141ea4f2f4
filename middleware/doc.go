// Package middleware provides command middleware for the MPD client.
//
// Middleware follows the standard pattern where each middleware wraps the
// next executor in the chain, allowing pre- and post-processing of every
// command the client sends.
//
// # Basic Usage
//
// Create and compose middleware:
//
//	chain := middleware.Chain(
//	    middleware.Recover(),
//	    middleware.CommandID(),
//	    middleware.Logging(logger),
//	)
//
// and pass it to the client with mpd.WithMiddleware.
//
// # Available Middleware
//
//   - Recover: Catches panics and converts them to errors
//   - CommandID: Injects unique command IDs into the context
//   - Timeout: Enforces per-command deadlines
//   - Logging: Logs command names, timing, and failures
//   - OTel: OpenTelemetry spans and metrics per command
//   - RateLimit: Token bucket limiting of outgoing commands
//
// # Custom Middleware
//
// Implement custom middleware using the Middleware type:
//
//	func Dump() middleware.Middleware {
//	    return func(next middleware.ExecFunc) middleware.ExecFunc {
//	        return func(ctx context.Context, cmd protocol.Command) (string, error) {
//	            fmt.Println(protocol.Encode(cmd))
//	            return next(ctx, cmd)
//	        }
//	    }
//	}
package middleware

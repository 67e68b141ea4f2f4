package middleware

import "time"

// DefaultStack returns the recommended middleware stack for production
// clients: panic recovery, command ID injection, and logging.
func DefaultStack(logger Logger) []Middleware {
	return []Middleware{
		Recover(),
		CommandID(),
		Logging(logger),
	}
}

// DefaultStackWithTimeout returns the default stack with a timeout middleware.
func DefaultStackWithTimeout(logger Logger, timeout time.Duration) []Middleware {
	return []Middleware{
		Recover(),
		CommandID(),
		Timeout(timeout),
		Logging(logger),
	}
}

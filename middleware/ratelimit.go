package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

// ErrRateLimited is returned when a command is refused by the rate limiter.
var ErrRateLimited = errors.New("mpd: rate limit exceeded")

// RateLimitOption configures the rate limiter.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	keyFunc func(protocol.Command) string
	logger  Logger
}

// WithRateLimitKeyFunc sets a function to extract a rate limit key from
// commands. This allows per-command-name rate limiting.
func WithRateLimitKeyFunc(fn func(protocol.Command) string) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.keyFunc = fn
	}
}

// WithRateLimitLogger sets the logger for rate limit events.
func WithRateLimitLogger(l Logger) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.logger = l
	}
}

// RateLimit returns middleware that limits outgoing command rate using a
// token bucket algorithm. The rate is specified as commands per second.
// Burst allows short bursts above the rate limit.
func RateLimit(rate int, burst int, opts ...RateLimitOption) Middleware {
	cfg := &rateLimitConfig{
		keyFunc: func(protocol.Command) string { return "global" },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := ratelimit.New(&ratelimit.Config{
		Rate:     rate,
		Burst:    burst,
		Interval: time.Second,
	})

	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, cmd protocol.Command) (string, error) {
			key := cfg.keyFunc(cmd)

			if !limiter.Allow(ctx, key) {
				if cfg.logger != nil {
					cfg.logger.Warn("rate limit exceeded",
						F("command", protocol.Name(cmd)),
						F("key", key),
					)
				}
				return "", ErrRateLimited
			}

			return next(ctx, cmd)
		}
	}
}

// RateLimitByCommand returns rate limiting middleware that applies
// per-command-name limits.
func RateLimitByCommand(rate int, burst int, opts ...RateLimitOption) Middleware {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(func(cmd protocol.Command) string {
			return protocol.Name(cmd)
		}),
	}, opts...)
	return RateLimit(rate, burst, allOpts...)
}

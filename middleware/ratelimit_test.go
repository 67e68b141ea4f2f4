package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

func TestRateLimit(t *testing.T) {
	t.Run("allows commands under the limit", func(t *testing.T) {
		exec := RateLimit(100, 10)(func(ctx context.Context, cmd protocol.Command) (string, error) {
			return "", nil
		})

		for range 5 {
			if _, err := exec(context.Background(), protocol.Status{}); err != nil {
				t.Fatalf("exec failed: %v", err)
			}
		}
	})

	t.Run("refuses commands over the burst", func(t *testing.T) {
		var executed int
		exec := RateLimit(1, 1)(func(ctx context.Context, cmd protocol.Command) (string, error) {
			executed++
			return "", nil
		})

		var limited bool
		for range 10 {
			_, err := exec(context.Background(), protocol.Status{})
			if errors.Is(err, ErrRateLimited) {
				limited = true
				break
			}
			if err != nil {
				t.Fatalf("exec failed: %v", err)
			}
		}
		if !limited {
			t.Fatal("no command was rate limited")
		}
		if executed == 0 {
			t.Fatal("no command executed before limiting")
		}
	})

	t.Run("per-command keys limit independently", func(t *testing.T) {
		exec := RateLimitByCommand(1, 1)(func(ctx context.Context, cmd protocol.Command) (string, error) {
			return "", nil
		})

		// Exhaust the status bucket.
		_, _ = exec(context.Background(), protocol.Status{})
		_, statusErr := exec(context.Background(), protocol.Status{})

		// The next bucket is untouched.
		if _, err := exec(context.Background(), protocol.Next{}); err != nil {
			t.Fatalf("next was limited by the status bucket: %v", err)
		}

		if !errors.Is(statusErr, ErrRateLimited) {
			t.Fatalf("status error = %v, want ErrRateLimited", statusErr)
		}
	})

	t.Run("logs refusals", func(t *testing.T) {
		logger := &recordingLogger{}
		exec := RateLimit(1, 1, WithRateLimitLogger(logger))(
			func(ctx context.Context, cmd protocol.Command) (string, error) {
				return "", nil
			})

		for range 10 {
			if _, err := exec(context.Background(), protocol.Status{}); err != nil {
				break
			}
		}

		entry := logger.last(t)
		if entry.level != "warn" {
			t.Errorf("level = %q, want warn", entry.level)
		}
	})
}

package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

func tag(name string, order *[]string) Middleware {
	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, cmd protocol.Command) (string, error) {
			*order = append(*order, name+" before")
			body, err := next(ctx, cmd)
			*order = append(*order, name+" after")
			return body, err
		}
	}
}

func TestChain(t *testing.T) {
	t.Run("executes in order", func(t *testing.T) {
		var order []string

		exec := Chain(tag("m1", &order), tag("m2", &order), tag("m3", &order))(
			func(ctx context.Context, cmd protocol.Command) (string, error) {
				order = append(order, "exec")
				return "", nil
			})

		if _, err := exec(context.Background(), protocol.Status{}); err != nil {
			t.Fatalf("exec failed: %v", err)
		}

		want := []string{
			"m1 before", "m2 before", "m3 before",
			"exec",
			"m3 after", "m2 after", "m1 after",
		}
		if len(order) != len(want) {
			t.Fatalf("order = %v, want %v", order, want)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
			}
		}
	})

	t.Run("empty chain is the executor itself", func(t *testing.T) {
		exec := Chain()(func(ctx context.Context, cmd protocol.Command) (string, error) {
			return "body", nil
		})

		body, err := exec(context.Background(), protocol.Status{})
		if err != nil {
			t.Fatalf("exec failed: %v", err)
		}
		if body != "body" {
			t.Errorf("body = %q, want %q", body, "body")
		}
	})

	t.Run("errors pass through unchanged", func(t *testing.T) {
		sentinel := errors.New("boom")
		var order []string

		exec := Chain(tag("m1", &order))(
			func(ctx context.Context, cmd protocol.Command) (string, error) {
				return "", sentinel
			})

		_, err := exec(context.Background(), protocol.Status{})
		if !errors.Is(err, sentinel) {
			t.Fatalf("error = %v, want sentinel", err)
		}
	})
}

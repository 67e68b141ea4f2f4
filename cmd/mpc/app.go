package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	mpd "github.com/felixgeelhaar/mpd-go"
	"github.com/felixgeelhaar/mpd-go/middleware"
)

// app carries the shared CLI state into the subcommand Run methods.
type app struct {
	addr    string
	quiet   bool
	out     io.Writer
	logger  *slog.Logger
	timeout time.Duration

	client *mpd.Client
}

// connect returns a usable client, dialing lazily and redialing after a
// fault.
func (a *app) connect(ctx context.Context) (*mpd.Client, error) {
	if a.client != nil && !a.client.Faulted() {
		return a.client, nil
	}
	if a.client != nil {
		_ = a.client.Close()
		a.client = nil
	}

	c, err := mpd.Dial(ctx, a.addr,
		mpd.WithTimeout(a.timeout),
		mpd.WithMiddleware(
			middleware.Recover(),
			middleware.CommandID(),
			middleware.Logging(commandLogger(a.logger)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", a.addr, err)
	}
	a.client = c
	return c, nil
}

func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
}

// finish prints the status tail most commands end with, unless quiet.
func (a *app) finish(ctx context.Context) error {
	if a.quiet {
		return nil
	}

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}

	status, err := c.Status(ctx)
	if err != nil {
		return err
	}

	var song *mpd.Song
	if status.Extra != nil {
		song, err = c.CurrentSong(ctx)
		if err != nil {
			return err
		}
	}

	printStatus(a.out, status, song)
	return nil
}

package main

import (
	"context"
	"fmt"

	mpd "github.com/felixgeelhaar/mpd-go"
)

// parseBoolArg accepts the mode argument spellings.
func parseBoolArg(s string) (bool, error) {
	switch s {
	case "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	default:
		return false, fmt.Errorf("expected a boolean (0/1/false/no/off/on/true/yes), got %q", s)
	}
}

// setMode applies a mode subcommand: an explicit argument sets the mode,
// no argument toggles it.
func setMode(a *app, mode mpd.Mode, arg string, current func(*mpd.Status) bool) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}

	var state bool
	if arg == "" {
		status, err := c.Status(ctx)
		if err != nil {
			return err
		}
		state = !current(status)
	} else {
		state, err = parseBoolArg(arg)
		if err != nil {
			return err
		}
	}

	if err := c.SetMode(ctx, mode, state); err != nil {
		return err
	}
	return a.finish(ctx)
}

type addCmd struct {
	URI string `arg:"" help:"File or directory to append."`
}

func (cmd *addCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}
	if err := c.Add(ctx, cmd.URI); err != nil {
		return err
	}
	return a.finish(ctx)
}

type clearCmd struct{}

func (cmd *clearCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}
	if err := c.Clear(ctx); err != nil {
		return err
	}
	return a.finish(ctx)
}

type consumeCmd struct {
	State string `arg:"" optional:"" help:"on or off; omit to toggle."`
}

func (cmd *consumeCmd) Run(a *app) error {
	return setMode(a, mpd.ModeConsume, cmd.State, func(s *mpd.Status) bool { return s.Consume })
}

type listallCmd struct {
	URI string `arg:"" optional:"" help:"Directory to list; omit for everything."`
}

func (cmd *listallCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}

	files, err := c.ListAll(ctx, cmd.URI)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(a.out, f)
	}
	return nil
}

type nextCmd struct{}

func (cmd *nextCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}
	if err := c.Next(ctx); err != nil {
		return err
	}
	return a.finish(ctx)
}

type pauseCmd struct{}

func (cmd *pauseCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}
	if err := c.Pause(ctx, true); err != nil {
		return err
	}
	return a.finish(ctx)
}

type playCmd struct {
	Position *int `arg:"" optional:"" help:"1-based playlist position."`
}

func (cmd *playCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}

	var pos *int
	if cmd.Position != nil {
		if *cmd.Position < 1 {
			return fmt.Errorf("playlist position must be at least 1, got %d", *cmd.Position)
		}
		p := *cmd.Position - 1
		pos = &p
	}

	if err := c.Play(ctx, pos); err != nil {
		return err
	}
	return a.finish(ctx)
}

type playlistCmd struct{}

func (cmd *playlistCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}

	songs, err := c.Playlist(ctx)
	if err != nil {
		return err
	}
	for _, song := range songs {
		fmt.Fprintf(a.out, "%s - %s\n", song.Artist, song.Title)
	}
	return nil
}

type prevCmd struct{}

func (cmd *prevCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}
	if err := c.Previous(ctx); err != nil {
		return err
	}
	return a.finish(ctx)
}

type randomCmd struct {
	State string `arg:"" optional:"" help:"on or off; omit to toggle."`
}

func (cmd *randomCmd) Run(a *app) error {
	return setMode(a, mpd.ModeRandom, cmd.State, func(s *mpd.Status) bool { return s.Random })
}

type repeatCmd struct {
	State string `arg:"" optional:"" help:"on or off; omit to toggle."`
}

func (cmd *repeatCmd) Run(a *app) error {
	return setMode(a, mpd.ModeRepeat, cmd.State, func(s *mpd.Status) bool { return s.Repeat })
}

type singleCmd struct {
	State string `arg:"" optional:"" help:"on or off; omit to toggle."`
}

func (cmd *singleCmd) Run(a *app) error {
	return setMode(a, mpd.ModeSingle, cmd.State, func(s *mpd.Status) bool { return s.Single })
}

type statusCmd struct{}

func (cmd *statusCmd) Run(a *app) error {
	ctx := context.Background()

	// Status is the one command that prints even under --quiet.
	quiet := a.quiet
	a.quiet = false
	defer func() { a.quiet = quiet }()

	return a.finish(ctx)
}

type stopCmd struct{}

func (cmd *stopCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}
	if err := c.Stop(ctx); err != nil {
		return err
	}
	return a.finish(ctx)
}

type updateCmd struct {
	URI string `arg:"" optional:"" help:"Directory or file to rescan; omit for everything."`
}

func (cmd *updateCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}

	job, err := c.Update(ctx, cmd.URI)
	if err != nil {
		return err
	}
	if !a.quiet {
		fmt.Fprintf(a.out, "Updating DB (#%d) ...\n", job)
	}
	return nil
}

type versionCmd struct{}

func (cmd *versionCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "mpd version: %s\n", c.Version())
	return nil
}

type volumeCmd struct {
	Level string `arg:"" help:"Volume 0-100, or a +/- prefixed change."`
}

func (cmd *volumeCmd) Run(a *app) error {
	ctx := context.Background()

	c, err := a.connect(ctx)
	if err != nil {
		return err
	}

	level, err := resolveVolume(ctx, c, cmd.Level)
	if err != nil {
		return err
	}
	if err := c.SetVolume(ctx, level); err != nil {
		return err
	}
	return a.finish(ctx)
}

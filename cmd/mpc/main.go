// Command mpc is a minimal command-line client for the Music Player Daemon.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/felixgeelhaar/mpd-go/middleware"
)

type cli struct {
	Host    string `help:"Daemon host, or a socket path." env:"MPD_HOST" default:"localhost"`
	Port    string `help:"Daemon port." env:"MPD_PORT" default:"6600"`
	Quiet   bool   `short:"q" help:"Suppress the status printout."`
	Verbose int    `short:"v" type:"counter" help:"Increase log verbosity."`

	Add      addCmd      `cmd:"" help:"Append a file or directory to the playlist."`
	Clear    clearCmd    `cmd:"" help:"Empty the playlist."`
	Consume  consumeCmd  `cmd:"" help:"Toggle or set consume mode."`
	Listall  listallCmd  `cmd:"" help:"List all songs in the database."`
	Next     nextCmd     `cmd:"" help:"Play the next song."`
	Pause    pauseCmd    `cmd:"" help:"Pause playback."`
	Play     playCmd     `cmd:"" help:"Start playback, optionally at a playlist position."`
	Playlist playlistCmd `cmd:"" help:"Print the current playlist."`
	Prev     prevCmd     `cmd:"" help:"Play the previous song."`
	Random   randomCmd   `cmd:"" help:"Toggle or set random mode."`
	Repeat   repeatCmd   `cmd:"" help:"Toggle or set repeat mode."`
	Single   singleCmd   `cmd:"" help:"Toggle or set single mode."`
	Status   statusCmd   `cmd:"" default:"1" help:"Print the player status."`
	Stop     stopCmd     `cmd:"" help:"Stop playback."`
	Update   updateCmd   `cmd:"" help:"Rescan the music database."`
	Version  versionCmd  `cmd:"" help:"Print the daemon's protocol version."`
	Volume   volumeCmd   `cmd:"" help:"Set the volume, absolute or with a +/- prefix."`
}

func main() {
	var flags cli
	kctx := kong.Parse(&flags,
		kong.Name("mpc"),
		kong.Description("A command-line client for the Music Player Daemon."),
		kong.UsageOnError(),
	)

	logger := newLogger(flags.Verbose)

	a := &app{
		addr:    flags.addr(),
		quiet:   flags.Quiet,
		out:     os.Stdout,
		logger:  logger,
		timeout: 10 * time.Second,
	}
	defer a.close()

	kctx.FatalIfErrorf(kctx.Run(a))
}

// addr combines host and port, passing socket paths through untouched.
func (c *cli) addr() string {
	for _, r := range c.Host {
		if r == '/' {
			return c.Host
		}
	}
	return c.Host + ":" + c.Port
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// commandLogger adapts the CLI logger for the client middleware.
func commandLogger(logger *slog.Logger) middleware.Logger {
	return middleware.SlogLogger{L: logger}
}

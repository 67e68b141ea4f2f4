package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	mpd "github.com/felixgeelhaar/mpd-go"
)

// printStatus renders the classic three-line status printout:
//
//	Artist - Title
//	[playing] #5/12   2:03/6:00 (34%)
//	volume: 73%   repeat: off   random: on   single: off   consume: off
//
// Stopped players skip the first two lines; a running database update adds
// its own line before the volume line.
func printStatus(w io.Writer, status *mpd.Status, song *mpd.Song) {
	if status.Extra != nil {
		if song != nil {
			fmt.Fprintf(w, "%s - %s\n", song.Artist, song.Title)
		}
		fmt.Fprintf(w, "[%s] #%d/%d   %s\n",
			stateLabel(status.State),
			status.Extra.Pos+1,
			status.PlaylistLength,
			timeLabel(status.Extra.Time),
		)
	}

	if status.UpdatingDB != nil {
		fmt.Fprintf(w, "Updating DB (#%d) ...\n", *status.UpdatingDB)
	}

	fmt.Fprintf(w, "volume:%s   repeat: %s   random: %s   single: %s   consume: %s\n",
		volumeLabel(status.Volume),
		onOff(status.Repeat),
		onOff(status.Random),
		onOff(status.Single),
		onOff(status.Consume),
	)
}

func stateLabel(state mpd.State) string {
	switch state {
	case mpd.StatePlay:
		return "playing"
	case mpd.StatePause:
		return "paused"
	default:
		return "stopped"
	}
}

func timeLabel(t *mpd.Time) string {
	if t == nil {
		return "0:00/0:00 (0%)"
	}

	pct := uint(0)
	if t.Total > 0 {
		pct = t.Elapsed * 100 / t.Total
	}
	return fmt.Sprintf("%s/%s (%d%%)", clock(t.Elapsed), clock(t.Total), pct)
}

func clock(seconds uint) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func volumeLabel(volume *int) string {
	if volume == nil {
		return " n/a"
	}
	return fmt.Sprintf("%3d%%", *volume)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// resolveVolume turns the volume argument into an absolute level. A +/-
// prefix changes the current level.
func resolveVolume(ctx context.Context, c *mpd.Client, arg string) (int, error) {
	relative := strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-")

	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bad volume %q", arg)
	}

	if !relative {
		if n < 0 || n > 100 {
			return 0, fmt.Errorf("volume must be between 0 and 100, got %d", n)
		}
		return n, nil
	}

	status, err := c.Status(ctx)
	if err != nil {
		return 0, err
	}
	if status.Volume == nil {
		return 0, fmt.Errorf("daemon has no volume control")
	}

	level := *status.Volume + n
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return level, nil
}

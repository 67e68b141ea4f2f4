package protocol

import (
	"strconv"
	"strings"
)

// Command is one MPD command. The set of commands is closed: each variant
// maps deterministically to a single wire line via Encode.
type Command interface {
	wire() string
}

// Mode is one of the four independent playback modes.
type Mode int

// Playback modes.
const (
	// ModeConsume removes each song from the playlist after it played.
	ModeConsume Mode = iota
	ModeRandom
	ModeRepeat
	// ModeSingle stops playback after the current song, or repeats it when
	// repeat mode is also enabled.
	ModeSingle
)

// String returns the mode's command word.
func (m Mode) String() string {
	switch m {
	case ModeConsume:
		return "consume"
	case ModeRandom:
		return "random"
	case ModeRepeat:
		return "repeat"
	case ModeSingle:
		return "single"
	default:
		return "unknown"
	}
}

// Add appends the file URI to the playlist; directories are added
// recursively.
type Add struct {
	URI string
}

// Clear empties the current playlist.
type Clear struct{}

// CurrentSong requests the song info of the current song.
type CurrentSong struct{}

// ListAll lists all songs and directories under URI. A nil URI lists the
// whole database.
type ListAll struct {
	URI *string
}

// Next plays the next song in the playlist.
type Next struct{}

// Pause pauses (State true) or resumes (State false) playback.
type Pause struct {
	State bool
}

// Play begins playing the playlist at the 0-based Position. A nil Position
// resumes the current song.
type Play struct {
	Position *int
}

// PlaylistInfo requests the song info of every song in the playlist.
type PlaylistInfo struct{}

// Previous plays the previous song in the playlist.
type Previous struct{}

// Set enables or disables a playback mode.
type Set struct {
	Mode  Mode
	State bool
}

// Status requests the current player state and volume level.
type Status struct{}

// Stop stops playing.
type Stop struct{}

// Update rescans the music database. A nil URI updates everything,
// otherwise only the named directory or file.
type Update struct {
	URI *string
}

// Volume sets the volume level.
type Volume struct {
	Level int
}

// Encode maps cmd to its wire line, without the trailing newline; the
// writer appends the terminator. Encoding is pure and total.
//
// URI parameters are wrapped in double quotes with no escaping: values
// containing the quote character are not supported and must not be passed.
func Encode(cmd Command) string {
	return cmd.wire()
}

// Name returns the command word, the first token of the encoded line. It is
// used as a label by logging and telemetry middleware.
func Name(cmd Command) string {
	line := cmd.wire()
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i]
	}
	return line
}

func (c Add) wire() string { return `add "` + c.URI + `"` }

func (c Clear) wire() string { return "clear" }

func (c CurrentSong) wire() string { return "currentsong" }

func (c ListAll) wire() string {
	if c.URI == nil {
		return "listall"
	}
	return `listall "` + *c.URI + `"`
}

func (c Next) wire() string { return "next" }

func (c Pause) wire() string {
	if c.State {
		return "pause 1"
	}
	return "pause 0"
}

func (c Play) wire() string {
	if c.Position == nil {
		return "play"
	}
	return "play " + strconv.Itoa(*c.Position)
}

func (c PlaylistInfo) wire() string { return "playlistinfo" }

func (c Previous) wire() string { return "previous" }

func (c Set) wire() string {
	if c.State {
		return c.Mode.String() + " 1"
	}
	return c.Mode.String() + " 0"
}

func (c Status) wire() string { return "status" }

func (c Stop) wire() string { return "stop" }

func (c Update) wire() string {
	if c.URI == nil {
		return "update"
	}
	return `update "` + *c.URI + `"`
}

func (c Volume) wire() string { return "setvol " + strconv.Itoa(c.Level) }

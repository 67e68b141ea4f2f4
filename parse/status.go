package parse

import "strings"

// State is the playback state reported by the daemon.
type State int

// Playback states.
const (
	StatePlay State = iota + 1
	StatePause
	StateStop
)

// String returns the state's wire token.
func (s State) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	case StateStop:
		return "stop"
	default:
		return "unknown"
	}
}

func parseState(value string) (State, *Error) {
	switch value {
	case "play":
		return StatePlay, nil
	case "pause":
		return StatePause, nil
	case "stop":
		return StateStop, nil
	default:
		return 0, badValue("State", value)
	}
}

// Time is elapsed and total duration in whole seconds. Both components are
// required when the field is present at all.
type Time struct {
	Elapsed uint
	Total   uint
}

// parseTime parses the "elapsed:total" wire form.
func parseTime(value string) (Time, *Error) {
	elapsed, total, found := strings.Cut(value, ":")
	if !found {
		return Time{}, badValue("Time", value)
	}

	e, err := parseUint(elapsed)
	if err != nil {
		return Time{}, badValue("Time", value)
	}
	t, err := parseUint(total)
	if err != nil {
		return Time{}, badValue("Time", value)
	}
	return Time{Elapsed: e, Total: t}, nil
}

// Extra carries the Status fields that are only present while a song is
// loaded. Elapsed and Time are stored independently on the wire; neither
// implies the other.
type Extra struct {
	// Pos is the song's 0-based position in the playlist.
	Pos uint

	// Elapsed is the elapsed time with sub-second precision, when reported.
	Elapsed *float64

	// Time is the coarse elapsed/total time, when reported.
	Time *Time
}

// Status is a decoded snapshot of player state.
type Status struct {
	// State is the playback state.
	State State

	// The four independent playback modes.
	Consume bool
	Random  bool
	Repeat  bool
	Single  bool

	// PlaylistLength is the number of songs in the playlist.
	PlaylistLength uint

	// Volume is the volume level. Nil means the daemon cannot control the
	// volume (wire value -1).
	Volume *int

	// UpdatingDB holds the id of a running database update job, if any.
	UpdatingDB *uint

	// Extra is present only when a song is loaded.
	Extra *Extra
}

// Decoder decodes response bodies into typed records. The zero value is
// the permissive decoder: unrecognized keys are ignored. With Strict set,
// an unrecognized key is a KindUnhandledKey error.
type Decoder struct {
	Strict bool
}

// Status decodes the body of a status reply.
func (d Decoder) Status(body string) (*Status, error) {
	var (
		st   Status
		seen struct {
			consume        bool
			playlistLength bool
			random         bool
			repeat         bool
			single         bool
			state          bool
			volume         bool
		}
		song    *uint
		elapsed *float64
		tm      *Time
	)

	scanErr := eachPair(body, func(key, value string) *Error {
		switch key {
		case "consume":
			b, err := parseBool(value)
			if err != nil {
				return err
			}
			st.Consume, seen.consume = b, true
		case "elapsed":
			f, err := parseFloat(value)
			if err != nil {
				return err
			}
			elapsed = &f
		case "playlistlength":
			n, err := parseUint(value)
			if err != nil {
				return err
			}
			st.PlaylistLength, seen.playlistLength = n, true
		case "random":
			b, err := parseBool(value)
			if err != nil {
				return err
			}
			st.Random, seen.random = b, true
		case "repeat":
			b, err := parseBool(value)
			if err != nil {
				return err
			}
			st.Repeat, seen.repeat = b, true
		case "single":
			b, err := parseBool(value)
			if err != nil {
				return err
			}
			st.Single, seen.single = b, true
		case "song":
			n, err := parseUint(value)
			if err != nil {
				return err
			}
			song = &n
		case "state":
			s, err := parseState(value)
			if err != nil {
				return err
			}
			st.State, seen.state = s, true
		case "time":
			t, err := parseTime(value)
			if err != nil {
				return err
			}
			tm = &t
		case "updating_db":
			n, err := parseUint(value)
			if err != nil {
				return err
			}
			st.UpdatingDB = &n
		case "volume":
			if value == "-1" {
				st.Volume = nil
			} else {
				n, err := parseInt(value)
				if err != nil {
					return err
				}
				st.Volume = &n
			}
			seen.volume = true
		default:
			if d.Strict {
				return &Error{Kind: KindUnhandledKey, Key: key, Value: value}
			}
		}
		return nil
	})
	if scanErr != nil {
		return nil, scanErr
	}

	// Required keys, reported first-missing-wins.
	required := []struct {
		key string
		ok  bool
	}{
		{"consume", seen.consume},
		{"playlistlength", seen.playlistLength},
		{"random", seen.random},
		{"repeat", seen.repeat},
		{"single", seen.single},
		{"state", seen.state},
		{"volume", seen.volume},
	}
	for _, r := range required {
		if !r.ok {
			return nil, expectedKey(r.key, body)
		}
	}

	// Extra exists exactly when a song is loaded; elapsed and time ride
	// along independently.
	if song != nil {
		st.Extra = &Extra{Pos: *song, Elapsed: elapsed, Time: tm}
	}

	return &st, nil
}

// ParseStatus decodes a status body with the permissive decoder.
func ParseStatus(body string) (*Status, error) {
	return Decoder{}.Status(body)
}

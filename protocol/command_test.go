package protocol

import "testing"

func TestEncode(t *testing.T) {
	uri := "music/some album/01.flac"
	pos := 4

	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "add quotes the uri",
			cmd:  Add{URI: uri},
			want: `add "music/some album/01.flac"`,
		},
		{
			name: "clear",
			cmd:  Clear{},
			want: "clear",
		},
		{
			name: "currentsong",
			cmd:  CurrentSong{},
			want: "currentsong",
		},
		{
			name: "listall without uri",
			cmd:  ListAll{},
			want: "listall",
		},
		{
			name: "listall with uri",
			cmd:  ListAll{URI: &uri},
			want: `listall "music/some album/01.flac"`,
		},
		{
			name: "next",
			cmd:  Next{},
			want: "next",
		},
		{
			name: "pause on",
			cmd:  Pause{State: true},
			want: "pause 1",
		},
		{
			name: "pause off",
			cmd:  Pause{State: false},
			want: "pause 0",
		},
		{
			name: "play resumes without position",
			cmd:  Play{},
			want: "play",
		},
		{
			name: "play at position",
			cmd:  Play{Position: &pos},
			want: "play 4",
		},
		{
			name: "playlistinfo",
			cmd:  PlaylistInfo{},
			want: "playlistinfo",
		},
		{
			name: "previous",
			cmd:  Previous{},
			want: "previous",
		},
		{
			name: "set consume on",
			cmd:  Set{Mode: ModeConsume, State: true},
			want: "consume 1",
		},
		{
			name: "set random off",
			cmd:  Set{Mode: ModeRandom, State: false},
			want: "random 0",
		},
		{
			name: "set repeat on",
			cmd:  Set{Mode: ModeRepeat, State: true},
			want: "repeat 1",
		},
		{
			name: "set single off",
			cmd:  Set{Mode: ModeSingle, State: false},
			want: "single 0",
		},
		{
			name: "status",
			cmd:  Status{},
			want: "status",
		},
		{
			name: "stop",
			cmd:  Stop{},
			want: "stop",
		},
		{
			name: "update without uri",
			cmd:  Update{},
			want: "update",
		},
		{
			name: "update with uri",
			cmd:  Update{URI: &uri},
			want: `update "music/some album/01.flac"`,
		},
		{
			name: "volume maps to setvol",
			cmd:  Volume{Level: 73},
			want: "setvol 73",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.cmd); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	uri := "a.flac"

	tests := []struct {
		cmd  Command
		want string
	}{
		{Add{URI: uri}, "add"},
		{Status{}, "status"},
		{Volume{Level: 10}, "setvol"},
		{Set{Mode: ModeSingle, State: true}, "single"},
		{Play{}, "play"},
	}

	for _, tt := range tests {
		if got := Name(tt.cmd); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", Encode(tt.cmd), got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeConsume, "consume"},
		{ModeRandom, "random"},
		{ModeRepeat, "repeat"},
		{ModeSingle, "single"},
		{Mode(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

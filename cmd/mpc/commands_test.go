package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/mpd-go/testutil"
)

const testStatusBody = "volume: 73\nrepeat: 0\nrandom: 1\nsingle: 0\nconsume: 0\n" +
	"playlistlength: 12\nstate: play\nsong: 4\ntime: 123:360"

func newTestApp(t *testing.T, srv *testutil.Server) (*app, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	a := &app{
		addr:    srv.Addr(),
		out:     &buf,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: 5 * time.Second,
	}
	t.Cleanup(a.close)
	return a, &buf
}

func TestStatusCommand(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleBody("status", testStatusBody)
	srv.HandleBody("currentsong", "file: a.flac\nArtist: A\nTitle: T")

	a, buf := newTestApp(t, srv)

	cmd := statusCmd{}
	require.NoError(t, cmd.Run(a))

	assert.Contains(t, buf.String(), "A - T\n")
	assert.Contains(t, buf.String(), "[playing] #5/12   2:03/6:00 (34%)\n")
	assert.Contains(t, buf.String(), "volume: 73%")
}

func TestPlayCommandPositionIsOneBased(t *testing.T) {
	srv := testutil.NewServer(t)

	a, _ := newTestApp(t, srv)
	a.quiet = true

	pos := 5
	cmd := playCmd{Position: &pos}
	require.NoError(t, cmd.Run(a))

	assert.Equal(t, []string{"play 4"}, srv.Requests())
}

func TestPlayCommandRejectsZero(t *testing.T) {
	srv := testutil.NewServer(t)

	a, _ := newTestApp(t, srv)
	a.quiet = true

	pos := 0
	cmd := playCmd{Position: &pos}
	assert.Error(t, cmd.Run(a))
}

func TestModeCommandToggles(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleBody("status", testStatusBody)

	a, _ := newTestApp(t, srv)
	a.quiet = true

	// random is on in the scripted status, so the toggle turns it off.
	cmd := randomCmd{}
	require.NoError(t, cmd.Run(a))

	requests := srv.Requests()
	assert.Contains(t, requests, "random 0")
}

func TestModeCommandExplicitState(t *testing.T) {
	srv := testutil.NewServer(t)

	a, _ := newTestApp(t, srv)
	a.quiet = true

	cmd := consumeCmd{State: "on"}
	require.NoError(t, cmd.Run(a))

	// An explicit argument avoids the status round trip.
	assert.Equal(t, []string{"consume 1"}, srv.Requests())
}

func TestPlaylistCommand(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleBody("playlistinfo",
		"file: x.mp3\nArtist: A\nTitle: T\nfile: y.mp3\nArtist: B\nTitle: U")

	a, buf := newTestApp(t, srv)

	cmd := playlistCmd{}
	require.NoError(t, cmd.Run(a))

	assert.Equal(t, "A - T\nB - U\n", buf.String())
}

func TestListallCommand(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleBody("listall", "directory: albums\nfile: albums/a.flac\nfile: albums/b.flac")

	a, buf := newTestApp(t, srv)

	cmd := listallCmd{}
	require.NoError(t, cmd.Run(a))

	assert.Equal(t, "albums/a.flac\nalbums/b.flac\n", buf.String())
}

func TestUpdateCommand(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleBody("update", "updating_db: 7")

	a, buf := newTestApp(t, srv)

	cmd := updateCmd{}
	require.NoError(t, cmd.Run(a))

	assert.Equal(t, "Updating DB (#7) ...\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	srv := testutil.NewServer(t)

	a, buf := newTestApp(t, srv)

	cmd := versionCmd{}
	require.NoError(t, cmd.Run(a))

	assert.Equal(t, "mpd version: 0.23.5\n", buf.String())
}

func TestQuietSuppressesStatusTail(t *testing.T) {
	srv := testutil.NewServer(t)

	a, buf := newTestApp(t, srv)
	a.quiet = true

	cmd := nextCmd{}
	require.NoError(t, cmd.Run(a))

	assert.Empty(t, buf.String())
	assert.Equal(t, []string{"next"}, srv.Requests())
}

func TestReconnectAfterFault(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleError("stop", "ACK [5@0] {stop} not playing")

	a, _ := newTestApp(t, srv)
	a.quiet = true

	stop := stopCmd{}
	require.Error(t, stop.Run(a))
	require.True(t, a.client.Faulted())

	// The next command dials a fresh connection.
	next := nextCmd{}
	require.NoError(t, next.Run(a))
	assert.False(t, a.client.Faulted())
}

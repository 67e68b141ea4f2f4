// Package client provides the MPD client connection.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/felixgeelhaar/mpd-go/middleware"
	"github.com/felixgeelhaar/mpd-go/parse"
	"github.com/felixgeelhaar/mpd-go/protocol"
	"github.com/felixgeelhaar/mpd-go/transport"
)

// DefaultAddr is the daemon's conventional listen address.
const DefaultAddr = "localhost:6600"

// ErrFaulted is returned for any command sent on a connection that
// previously failed. A faulted connection must be discarded and redialed.
var ErrFaulted = errors.New("mpd: connection is faulted")

// Client is a connection to an MPD daemon. One command is in flight at a
// time; methods are safe for concurrent use.
//
// After any server ACK or I/O failure the connection is faulted: every
// further command returns ErrFaulted.
type Client struct {
	stream  transport.Stream
	opts    clientOptions
	exec    middleware.ExecFunc
	version protocol.Version

	mu      sync.Mutex
	r       *bufio.Reader
	w       *bufio.Writer
	faulted bool
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	timeout    time.Duration
	middleware []middleware.Middleware
	decoder    parse.Decoder
}

// WithTimeout sets the default per-command timeout, applied when the
// caller's context carries no deadline. Zero disables the default.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithMiddleware appends command middleware, executed in the given order
// around every command.
func WithMiddleware(mw ...middleware.Middleware) Option {
	return func(o *clientOptions) {
		o.middleware = append(o.middleware, mw...)
	}
}

// WithDecoder sets the response decoder. The zero decoder is permissive;
// use parse.Decoder{Strict: true} to fail on unrecognized keys.
func WithDecoder(d parse.Decoder) Option {
	return func(o *clientOptions) {
		o.decoder = d
	}
}

// Dial connects to the daemon at addr and performs the handshake. An addr
// containing a slash is treated as a Unix socket path.
func Dial(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	stream, err := transport.Dial(ctx, addr)
	if err != nil {
		return nil, err
	}

	c, err := NewClient(ctx, stream, opts...)
	if err != nil {
		_ = stream.Close()
		return nil, err
	}
	return c, nil
}

// NewClient performs the handshake over an established stream. On error
// the stream is left open; closing it is the caller's responsibility.
func NewClient(ctx context.Context, stream transport.Stream, opts ...Option) (*Client, error) {
	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}

	c := &Client{
		stream: stream,
		opts:   options,
		r:      bufio.NewReader(stream),
		w:      bufio.NewWriter(stream),
	}
	c.exec = middleware.Chain(options.middleware...)(c.roundTrip)

	if err := c.handshake(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// handshake reads and validates the greeting line.
func (c *Client) handshake(ctx context.Context) error {
	if err := c.applyDeadline(ctx); err != nil {
		return err
	}

	line, err := c.r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("mpd: reading greeting: %w", err)
	}

	version, err := protocol.ParseGreeting(line)
	if err != nil {
		return err
	}
	c.version = version
	return nil
}

// Version reports the protocol version the daemon announced.
func (c *Client) Version() protocol.Version {
	return c.version
}

// Faulted reports whether the connection is unusable.
func (c *Client) Faulted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.faulted
}

// Close closes the underlying stream.
func (c *Client) Close() error {
	return c.stream.Close()
}

// Exec sends a command through the middleware chain and returns the raw
// reply body, without the terminator line.
func (c *Client) Exec(ctx context.Context, cmd protocol.Command) (string, error) {
	return c.exec(ctx, cmd)
}

// roundTrip is the innermost executor: one command line out, one reply in.
func (c *Client) roundTrip(ctx context.Context, cmd protocol.Command) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.faulted {
		return "", ErrFaulted
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.applyDeadline(ctx); err != nil {
		c.faulted = true
		return "", err
	}

	if err := c.send(cmd); err != nil {
		c.faulted = true
		return "", err
	}

	body, err := c.receive()
	if err != nil {
		// Both I/O failures and server ACKs fault the connection; after
		// an ACK the daemon may have dropped pipelining alignment.
		c.faulted = true
		return "", err
	}
	return body, nil
}

// applyDeadline propagates the context deadline to the stream, falling
// back to the configured timeout.
func (c *Client) applyDeadline(ctx context.Context) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		if c.opts.timeout <= 0 {
			deadline = time.Time{}
		} else {
			deadline = time.Now().Add(c.opts.timeout)
		}
	}

	if err := c.stream.SetReadDeadline(deadline); err != nil {
		return err
	}
	return c.stream.SetWriteDeadline(deadline)
}

func (c *Client) send(cmd protocol.Command) error {
	if _, err := c.w.WriteString(protocol.Encode(cmd)); err != nil {
		return err
	}
	if err := c.w.WriteByte('\n'); err != nil {
		return err
	}
	return c.w.Flush()
}

// receive reads reply lines until the terminator. An ACK is only valid as
// the first line; a later ACK would be part of some binary payload and is
// treated as body text.
func (c *Client) receive() (string, error) {
	var body strings.Builder

	for {
		line, err := c.r.ReadString('\n')
		if err != nil {
			return "", err
		}

		if body.Len() == 0 && strings.HasPrefix(line, protocol.ErrorPrefix) {
			return "", protocol.ParseAck(line)
		}
		if line == protocol.Terminator+"\n" {
			break
		}
		body.WriteString(line)
	}

	return strings.TrimSuffix(body.String(), "\n"), nil
}

// Status reports the current player state and volume level.
func (c *Client) Status(ctx context.Context) (*parse.Status, error) {
	body, err := c.Exec(ctx, protocol.Status{})
	if err != nil {
		return nil, err
	}
	return c.opts.decoder.Status(body)
}

// CurrentSong returns the song currently playing, or nil when the reply
// carries no song.
func (c *Client) CurrentSong(ctx context.Context) (*parse.Song, error) {
	body, err := c.Exec(ctx, protocol.CurrentSong{})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	return c.opts.decoder.Song(body)
}

// Playlist returns the songs in the current playlist, in order.
func (c *Client) Playlist(ctx context.Context) ([]parse.Song, error) {
	body, err := c.Exec(ctx, protocol.PlaylistInfo{})
	if err != nil {
		return nil, err
	}
	return c.opts.decoder.Songs(body)
}

// ListAll returns the file URIs under uri, recursively. An empty uri lists
// the whole database. Directory lines are skipped.
func (c *Client) ListAll(ctx context.Context, uri string) ([]string, error) {
	cmd := protocol.ListAll{}
	if uri != "" {
		cmd.URI = &uri
	}

	body, err := c.Exec(ctx, cmd)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(body, "\n") {
		if rest, ok := strings.CutPrefix(line, "file: "); ok {
			files = append(files, rest)
		}
	}
	return files, nil
}

// Add appends uri to the playlist; directories are added recursively.
func (c *Client) Add(ctx context.Context, uri string) error {
	_, err := c.Exec(ctx, protocol.Add{URI: uri})
	return err
}

// Clear empties the current playlist.
func (c *Client) Clear(ctx context.Context) error {
	_, err := c.Exec(ctx, protocol.Clear{})
	return err
}

// Next plays the next song in the playlist.
func (c *Client) Next(ctx context.Context) error {
	_, err := c.Exec(ctx, protocol.Next{})
	return err
}

// Previous plays the previous song in the playlist.
func (c *Client) Previous(ctx context.Context) error {
	_, err := c.Exec(ctx, protocol.Previous{})
	return err
}

// Stop stops playing.
func (c *Client) Stop(ctx context.Context) error {
	_, err := c.Exec(ctx, protocol.Stop{})
	return err
}

// Pause pauses (state true) or resumes (state false) playback.
func (c *Client) Pause(ctx context.Context, state bool) error {
	_, err := c.Exec(ctx, protocol.Pause{State: state})
	return err
}

// Play begins playing at the 0-based position, or resumes the current song
// when position is nil.
func (c *Client) Play(ctx context.Context, position *int) error {
	_, err := c.Exec(ctx, protocol.Play{Position: position})
	return err
}

// SetMode enables or disables one of the playback modes.
func (c *Client) SetMode(ctx context.Context, mode protocol.Mode, state bool) error {
	_, err := c.Exec(ctx, protocol.Set{Mode: mode, State: state})
	return err
}

// Update rescans the music database, everything when uri is empty. It
// returns the id of the started update job when the daemon reports one.
func (c *Client) Update(ctx context.Context, uri string) (uint, error) {
	cmd := protocol.Update{}
	if uri != "" {
		cmd.URI = &uri
	}

	body, err := c.Exec(ctx, cmd)
	if err != nil {
		return 0, err
	}

	for _, line := range strings.Split(body, "\n") {
		if rest, ok := strings.CutPrefix(line, "updating_db: "); ok {
			job, convErr := strconv.ParseUint(rest, 10, 32)
			if convErr != nil {
				return 0, &parse.Error{Kind: parse.KindBadValue, Type: "uint", Value: rest}
			}
			return uint(job), nil
		}
	}
	return 0, nil
}

// SetVolume sets the volume level, typically 0 through 100.
func (c *Client) SetVolume(ctx context.Context, level int) error {
	_, err := c.Exec(ctx, protocol.Volume{Level: level})
	return err
}

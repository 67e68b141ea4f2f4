// Package mpd provides a client for the Music Player Daemon protocol.
//
// mpd-go speaks the line-oriented MPD wire protocol over TCP, Unix
// sockets, or a WebSocket bridge, providing:
//   - Typed commands and decoded replies
//   - Gin-style middleware chains around every command
//   - OpenTelemetry tracing and metrics out of the box
//   - Recoverable, typed errors instead of connection teardown surprises
//
// Basic usage:
//
//	c, err := mpd.Dial(ctx, mpd.DefaultAddr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	status, err := c.Status(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(status.State)
package mpd

import (
	"context"
	"time"

	"github.com/felixgeelhaar/mpd-go/client"
	"github.com/felixgeelhaar/mpd-go/middleware"
	"github.com/felixgeelhaar/mpd-go/parse"
	"github.com/felixgeelhaar/mpd-go/protocol"
	"github.com/felixgeelhaar/mpd-go/transport"
)

// Re-export core types for convenience

// Client is a connection to an MPD daemon.
type Client = client.Client

// Option configures a Client.
type Option = client.Option

// Status is a decoded snapshot of player state.
type Status = parse.Status

// Song is the retained subset of track metadata.
type Song = parse.Song

// Time is elapsed and total playback time in seconds.
type Time = parse.Time

// Extra carries the status fields present only while a song is loaded.
type Extra = parse.Extra

// State is the playback state.
type State = parse.State

// Decoder decodes response bodies; the zero value is permissive.
type Decoder = parse.Decoder

// Mode is one of the four independent playback modes.
type Mode = protocol.Mode

// Command is one MPD command.
type Command = protocol.Command

// Version is the protocol version from the daemon's greeting.
type Version = protocol.Version

// ServerError is a failure the daemon reported via ACK.
type ServerError = protocol.ServerError

// HandshakeError reports a greeting that violated the protocol.
type HandshakeError = protocol.HandshakeError

// Stream is the byte stream the client speaks over.
type Stream = transport.Stream

// Playback states.
const (
	StatePlay  = parse.StatePlay
	StatePause = parse.StatePause
	StateStop  = parse.StateStop
)

// Playback modes.
const (
	ModeConsume = protocol.ModeConsume
	ModeRandom  = protocol.ModeRandom
	ModeRepeat  = protocol.ModeRepeat
	ModeSingle  = protocol.ModeSingle
)

// DefaultAddr is the daemon's conventional listen address.
const DefaultAddr = client.DefaultAddr

// ErrFaulted is returned for commands on a connection that previously
// failed.
var ErrFaulted = client.ErrFaulted

// Dial connects to the daemon at addr and performs the handshake. An addr
// containing a slash is treated as a Unix socket path.
func Dial(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	return client.Dial(ctx, addr, opts...)
}

// NewClient performs the handshake over an established stream, such as a
// transport.WebSocketStream.
func NewClient(ctx context.Context, stream Stream, opts ...Option) (*Client, error) {
	return client.NewClient(ctx, stream, opts...)
}

// WithTimeout sets the default per-command timeout, applied when the
// caller's context carries no deadline.
func WithTimeout(d time.Duration) Option {
	return client.WithTimeout(d)
}

// WithMiddleware appends command middleware, executed in the given order
// around every command.
func WithMiddleware(mw ...middleware.Middleware) Option {
	return client.WithMiddleware(mw...)
}

// WithDecoder sets the response decoder. Use Decoder{Strict: true} to fail
// on unrecognized keys.
func WithDecoder(d Decoder) Option {
	return client.WithDecoder(d)
}

// DefaultMiddleware returns the recommended middleware stack: panic
// recovery, command ID injection, and logging.
func DefaultMiddleware(logger middleware.Logger) []middleware.Middleware {
	return middleware.DefaultStack(logger)
}

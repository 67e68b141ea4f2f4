package transport

import (
	"context"
	"io"
	"net"
	"strings"
	"time"
)

// Stream is a bidirectional byte stream carrying the MPD protocol. Both
// net.Conn and WebSocketStream satisfy it.
type Stream interface {
	io.ReadWriteCloser

	// SetReadDeadline bounds future Read calls. A zero time clears the
	// deadline.
	SetReadDeadline(t time.Time) error

	// SetWriteDeadline bounds future Write calls. A zero time clears the
	// deadline.
	SetWriteDeadline(t time.Time) error
}

// Dial connects to an MPD daemon. An addr containing a slash is treated
// as a Unix socket path, anything else as a host:port TCP address.
func Dial(ctx context.Context, addr string) (Stream, error) {
	network := "tcp"
	if strings.ContainsRune(addr, '/') {
		network = "unix"
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

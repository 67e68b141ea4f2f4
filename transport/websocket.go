package transport

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketStream adapts a WebSocket connection into a Stream. Each Write
// becomes one binary message; Read drains incoming messages in order, so
// line framing done above this layer is preserved across message
// boundaries.
type WebSocketStream struct {
	conn *websocket.Conn

	// reader is the remainder of the message currently being drained.
	reader io.Reader

	writeMu sync.Mutex
}

// WebSocketOption configures DialWebSocket.
type WebSocketOption func(*websocket.Dialer)

// WithHandshakeTimeout bounds the WebSocket opening handshake.
func WithHandshakeTimeout(d time.Duration) WebSocketOption {
	return func(dialer *websocket.Dialer) {
		dialer.HandshakeTimeout = d
	}
}

// DialWebSocket connects to a WebSocket endpoint bridging an MPD daemon.
// The url uses the ws or wss scheme.
func DialWebSocket(ctx context.Context, url string, opts ...WebSocketOption) (*WebSocketStream, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&dialer)
	}

	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
		_ = conn.Close()
		return nil, websocket.ErrBadHandshake
	}

	return &WebSocketStream{conn: conn}, nil
}

// Read reads protocol bytes, spanning message boundaries as needed.
func (s *WebSocketStream) Read(p []byte) (int, error) {
	for {
		if s.reader == nil {
			_, r, err := s.conn.NextReader()
			if err != nil {
				return 0, err
			}
			s.reader = r
		}

		n, err := s.reader.Read(p)
		if err == io.EOF {
			// Message drained; the next Read pulls a fresh message.
			s.reader = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

// Write sends p as a single binary message.
func (s *WebSocketStream) Write(p []byte) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close sends a close frame and tears down the connection.
func (s *WebSocketStream) Close() error {
	s.writeMu.Lock()
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.writeMu.Unlock()

	return s.conn.Close()
}

// SetReadDeadline bounds future Read calls.
func (s *WebSocketStream) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

// SetWriteDeadline bounds future Write calls.
func (s *WebSocketStream) SetWriteDeadline(t time.Time) error {
	return s.conn.SetWriteDeadline(t)
}

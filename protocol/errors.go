package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// ServerError is a failure the daemon reported via the ACK sentinel.
// Message carries the full diagnostic text after the sentinel. When the
// reply follows the usual "ACK [code@index] {command} text" shape the
// parsed parts are filled in as well; otherwise they are zero and Text
// equals Message.
type ServerError struct {
	Message string
	Code    int
	Index   int
	Command string
	Text    string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return "mpd: server error: " + strings.TrimSpace(e.Message)
}

// HandshakeError reports a greeting that violated the protocol: a missing
// greeting prefix or a malformed version. It is fatal for the connection
// attempt and distinct from a transport I/O failure.
type HandshakeError struct {
	Greeting string
	Reason   string
}

// Error implements the error interface.
func (e *HandshakeError) Error() string {
	return fmt.Sprintf("mpd: handshake failed: %s (got %q)", e.Reason, e.Greeting)
}

// ParseAck builds a ServerError from a reply line starting with the ACK
// sentinel. The structured fields are best-effort: an ACK line that does
// not match the usual shape still yields a usable error with Message set.
func ParseAck(line string) *ServerError {
	msg := strings.TrimSpace(strings.TrimPrefix(line, ErrorPrefix))
	e := &ServerError{Message: msg, Text: msg}

	rest := msg
	if !strings.HasPrefix(rest, "[") {
		return e
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return e
	}
	code, index, ok := splitAckCode(rest[1:end])
	if !ok {
		return e
	}
	rest = strings.TrimSpace(rest[end+1:])

	if !strings.HasPrefix(rest, "{") {
		return e
	}
	brace := strings.IndexByte(rest, '}')
	if brace < 0 {
		return e
	}

	e.Code = code
	e.Index = index
	e.Command = rest[1:brace]
	e.Text = strings.TrimSpace(rest[brace+1:])
	return e
}

// splitAckCode parses the "code@index" part of an ACK line.
func splitAckCode(s string) (code, index int, ok bool) {
	c, i, found := strings.Cut(s, "@")
	if !found {
		return 0, 0, false
	}
	code, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, false
	}
	index, err = strconv.Atoi(i)
	if err != nil {
		return 0, 0, false
	}
	return code, index, true
}

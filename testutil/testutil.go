// Package testutil provides testing utilities for the MPD client.
//
// The core helper is Server, a scripted in-memory daemon speaking the MPD
// wire protocol over a real TCP listener. Tests register canned replies per
// command line and assert on the command lines the client sent.
//
// Example usage:
//
//	func TestStatus(t *testing.T) {
//	    srv := testutil.NewServer(t)
//	    srv.HandleBody("status", "volume: 73\n...\nstate: stop")
//
//	    c, err := mpd.Dial(context.Background(), srv.Addr())
//	    require.NoError(t, err)
//	    defer c.Close()
//
//	    st, err := c.Status(context.Background())
//	    require.NoError(t, err)
//	}
package testutil

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"testing"
)

// DefaultGreeting is the greeting line served to new connections.
const DefaultGreeting = "OK MPD 0.23.5\n"

// Server is a scripted MPD daemon bound to a loopback listener. Replies
// are looked up by the exact command line the client sends; unscripted
// commands get a bare OK.
type Server struct {
	t  testing.TB
	ln net.Listener
	wg sync.WaitGroup

	mu       sync.Mutex
	greeting string
	replies  map[string]string
	requests []string
	conns    map[net.Conn]struct{}
	closed   bool
}

// NewServer starts a scripted daemon on a random loopback port. The server
// is shut down automatically when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("testutil: listen failed: %v", err)
	}

	s := &Server{
		t:        t,
		ln:       ln,
		greeting: DefaultGreeting,
		replies:  make(map[string]string),
		conns:    make(map[net.Conn]struct{}),
	}

	s.wg.Add(1)
	go s.acceptLoop()

	t.Cleanup(s.Close)
	return s
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// SetGreeting replaces the greeting served to new connections. Useful for
// handshake failure tests.
func (s *Server) SetGreeting(greeting string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greeting = greeting
}

// Handle registers a raw reply for the exact command line. The reply must
// include its own terminator or error line.
func (s *Server) Handle(command, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[command] = reply
}

// HandleBody registers a successful reply with the given body lines. The
// terminator is appended automatically.
func (s *Server) HandleBody(command, body string) {
	reply := "OK\n"
	if body != "" {
		reply = strings.TrimSuffix(body, "\n") + "\nOK\n"
	}
	s.Handle(command, reply)
}

// HandleError registers a failure reply with the given ACK line.
func (s *Server) HandleError(command, ack string) {
	s.Handle(command, strings.TrimSuffix(ack, "\n")+"\n")
}

// Requests returns the command lines received so far, in order, across all
// connections.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Close shuts the listener down and waits for connection handlers to
// finish. It is safe to call more than once.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	_ = s.ln.Close()
	s.wg.Wait()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go s.serve(conn)
	}
}

func (s *Server) serve(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.conns[conn] = struct{}{}
	greeting := s.greeting
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	if _, err := conn.Write([]byte(greeting)); err != nil {
		return
	}

	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		command := strings.TrimSuffix(line, "\n")

		s.mu.Lock()
		s.requests = append(s.requests, command)
		reply, ok := s.replies[command]
		s.mu.Unlock()

		if !ok {
			reply = "OK\n"
		}
		if _, err := conn.Write([]byte(reply)); err != nil {
			return
		}
	}
}

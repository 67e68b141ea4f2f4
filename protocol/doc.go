// Package protocol defines the MPD wire protocol: command encoding, the
// handshake greeting, reply sentinels, and the protocol error types.
//
// This package provides the low-level pieces used by mpd-go. Most users
// should use the higher-level mpd package instead.
//
// # Commands
//
// Every protocol command is a value of the closed Command set and encodes
// to exactly one wire line:
//
//	protocol.Encode(protocol.Play{})                  // "play"
//	protocol.Encode(protocol.Add{URI: "a/b.flac"})    // `add "a/b.flac"`
//	protocol.Encode(protocol.Set{Mode: protocol.ModeRepeat, State: true}) // "repeat 1"
//
// # Replies
//
// A reply is zero or more body lines followed by the Terminator line, or a
// single line starting with ErrorPrefix for a server-reported failure:
//
//	OK MPD 0.23.5          <- one-shot greeting
//	volume: 73             <- body line
//	OK                     <- terminator
//	ACK [5@0] {play} ...   <- server error
//
// # Errors
//
// ServerError carries the daemon's ACK diagnostic, HandshakeError reports a
// greeting that violated the protocol. Both are typed and recoverable;
// transport failures are plain wrapped I/O errors.
package protocol

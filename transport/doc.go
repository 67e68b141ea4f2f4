// Package transport provides the byte streams the MPD client speaks over.
//
// The native transports are TCP and Unix domain sockets, reached through
// Dial. DialWebSocket adapts a WebSocket connection into the same Stream
// interface for daemons reached through a WebSocket bridge.
package transport

package protocol

// Wire sentinels. The protocol is textual and newline-terminated; these
// literals delimit and classify replies.
const (
	// GreetingPrefix starts the one-shot greeting the daemon sends on
	// connect, followed by its protocol version.
	GreetingPrefix = "OK MPD "

	// Terminator is the line that closes every successful reply.
	Terminator = "OK"

	// ErrorPrefix starts a reply line reporting a server-side failure.
	// The remainder of the line is the daemon's diagnostic text.
	ErrorPrefix = "ACK"
)

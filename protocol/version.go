package protocol

import (
	"strconv"
	"strings"
)

// Version is the protocol version the daemon announces in its greeting. It
// is parsed once at handshake time and never changes for the lifetime of a
// connection.
type Version struct {
	Major uint
	Minor uint
	Patch uint
}

// String formats the version as "major.minor.patch".
func (v Version) String() string {
	return strconv.FormatUint(uint64(v.Major), 10) + "." +
		strconv.FormatUint(uint64(v.Minor), 10) + "." +
		strconv.FormatUint(uint64(v.Patch), 10)
}

// ParseVersion parses a version string of exactly three dot-separated
// non-negative integers. Anything else is a *HandshakeError.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, &HandshakeError{
			Greeting: s,
			Reason:   "version is not three dot-separated components",
		}
	}

	nums := make([]uint, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return Version{}, &HandshakeError{
				Greeting: s,
				Reason:   "version component " + strconv.Quote(part) + " is not a number",
			}
		}
		nums[i] = uint(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// ParseGreeting validates the daemon's one-shot greeting line and extracts
// the announced version. The line must start with GreetingPrefix; any
// deviation is a *HandshakeError, distinct from a transport failure.
func ParseGreeting(line string) (Version, error) {
	if !strings.HasPrefix(line, GreetingPrefix) {
		return Version{}, &HandshakeError{
			Greeting: line,
			Reason:   "greeting does not start with " + strconv.Quote(GreetingPrefix),
		}
	}

	v, err := ParseVersion(strings.TrimRight(line[len(GreetingPrefix):], " \r\n"))
	if err != nil {
		if he, ok := err.(*HandshakeError); ok {
			he.Greeting = line
		}
		return Version{}, err
	}
	return v, nil
}

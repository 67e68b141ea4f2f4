package parse

import "fmt"

// Kind discriminates decode failures.
type Kind int

// Decode failure kinds.
const (
	// KindExpectedKey: a key the record requires never appeared in the body.
	KindExpectedKey Kind = iota + 1
	// KindMissingKey: a line had no key part.
	KindMissingKey
	// KindMissingValue: a line had no value part.
	KindMissingValue
	// KindBadValue: a value could not be converted to its target type.
	KindBadValue
	// KindUnhandledKey: a strict decoder met a key it does not recognize.
	KindUnhandledKey
)

// Error describes exactly one way a response body failed to decode. These
// indicate either a protocol version mismatch or a decoder bug; they are
// recoverable and never abort the caller.
type Error struct {
	Kind Kind

	// Key is the expected key for KindExpectedKey and the offending key
	// for KindUnhandledKey.
	Key string

	// Line is the malformed line for KindMissingKey and KindMissingValue.
	Line string

	// Value is the unconvertible value for KindBadValue and the paired
	// value for KindUnhandledKey.
	Value string

	// Type names the target type for KindBadValue.
	Type string

	// Body is the full response body, kept for KindExpectedKey diagnostics.
	Body string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindExpectedKey:
		return fmt.Sprintf("mpd: expected key %q in response:\n%s", e.Key, e.Body)
	case KindMissingKey:
		return fmt.Sprintf("mpd: missing key in line %q", e.Line)
	case KindMissingValue:
		return fmt.Sprintf("mpd: missing value in line %q", e.Line)
	case KindBadValue:
		return fmt.Sprintf("mpd: cannot parse %q as %s", e.Value, e.Type)
	case KindUnhandledKey:
		return fmt.Sprintf("mpd: unhandled key %q (value %q)", e.Key, e.Value)
	default:
		return "mpd: parse error"
	}
}

// Is implements errors.Is comparison by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func expectedKey(key, body string) *Error {
	return &Error{Kind: KindExpectedKey, Key: key, Body: body}
}

func badValue(typ, value string) *Error {
	return &Error{Kind: KindBadValue, Type: typ, Value: value}
}

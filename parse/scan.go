package parse

import (
	"strconv"
	"strings"
)

// separator splits a body line into its key and value parts.
const separator = ": "

// eachPair scans body as "key: value" lines and calls fn for every pair.
// A line without the separator or without a key is a malformed-line error,
// never silently skipped. An empty body has no lines.
func eachPair(body string, fn func(key, value string) *Error) *Error {
	if body == "" {
		return nil
	}

	for _, line := range strings.Split(body, "\n") {
		key, value, found := strings.Cut(line, separator)
		if !found {
			return &Error{Kind: KindMissingValue, Line: line}
		}
		if key == "" {
			return &Error{Kind: KindMissingKey, Line: line}
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

// parseBool accepts only the literal tokens "0" and "1".
func parseBool(value string) (bool, *Error) {
	switch value {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, badValue("bool", value)
	}
}

func parseUint(value string) (uint, *Error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, badValue("uint", value)
	}
	return uint(n), nil
}

func parseInt(value string) (int, *Error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, badValue("int", value)
	}
	return n, nil
}

func parseFloat(value string) (float64, *Error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, badValue("float64", value)
	}
	return f, nil
}

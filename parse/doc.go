// Package parse decodes MPD response bodies into typed records.
//
// A response body is zero or more "key: value" lines. Each decoder scans
// the body line by line, applies the matching value parser per recognized
// key, and reports required keys that never appeared. Decoding copies the
// string fields it keeps, so records stay valid after the connection
// buffer is reused.
//
// The zero Decoder is permissive: keys it does not recognize are ignored.
// Strict mode rejects them instead:
//
//	st, err := parse.ParseStatus(body)             // permissive
//	st, err := parse.Decoder{Strict: true}.Status(body)
//
// Every failure is a *Error with a Kind describing exactly one way the
// body was malformed; use errors.Is with a Kind-only *Error to match.
package parse

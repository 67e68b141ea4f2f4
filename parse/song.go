package parse

import "strings"

// leadingKey is the field that carries a song's file path and delimits
// records in multi-song bodies.
const leadingKey = "file"

// Song is the subset of track metadata the client retains. Every other
// field the daemon sends is recognized noise, not an error.
type Song struct {
	Artist string
	Title  string
}

// Song decodes the body of a currentsong reply, or one block of a
// playlistinfo reply.
func (d Decoder) Song(body string) (*Song, error) {
	var artist, title *string

	scanErr := eachPair(body, func(key, value string) *Error {
		switch key {
		case "Artist":
			v := value
			artist = &v
		case "Title":
			v := value
			title = &v
		case leadingKey:
			// Recognized as the record delimiter, not retained.
		default:
			if d.Strict {
				return &Error{Kind: KindUnhandledKey, Key: key, Value: value}
			}
		}
		return nil
	})
	if scanErr != nil {
		return nil, scanErr
	}

	if artist == nil {
		return nil, expectedKey("Artist", body)
	}
	if title == nil {
		return nil, expectedKey("Title", body)
	}

	return &Song{Artist: *artist, Title: *title}, nil
}

// Songs decodes a concatenated multi-song body, as produced by
// playlistinfo. Records are split at each "file" line: the line closes the
// block it appears in, and the remainder after the last one is the final
// block. An empty body is an empty playlist.
func (d Decoder) Songs(body string) ([]Song, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	var songs []Song
	rest := body
	for {
		i := strings.Index(rest, "\n"+leadingKey+":")
		if i < 0 {
			break
		}
		lineEnd := strings.IndexByte(rest[i+1:], '\n')
		if lineEnd < 0 {
			// The file line is the last line of the body; it belongs to
			// the final block below.
			break
		}

		song, err := d.Song(rest[:i+1+lineEnd])
		if err != nil {
			return nil, err
		}
		songs = append(songs, *song)
		rest = rest[i+1+lineEnd+1:]
	}

	song, err := d.Song(rest)
	if err != nil {
		return nil, err
	}
	return append(songs, *song), nil
}

// ParseSong decodes a song body with the permissive decoder.
func ParseSong(body string) (*Song, error) {
	return Decoder{}.Song(body)
}

// ParseSongs decodes a multi-song body with the permissive decoder.
func ParseSongs(body string) ([]Song, error) {
	return Decoder{}.Songs(body)
}

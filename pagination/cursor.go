package pagination

import (
	"encoding/base64"
	"errors"
	"strconv"
)

// ErrMalformedCursor is returned by DecodeCursor when a token does not decode to a
// non-negative decimal offset.
var ErrMalformedCursor = errors.New("pagination: malformed cursor")

// EncodeCursor turns an absolute offset into an opaque cursor token.
func EncodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(token string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrMalformedCursor
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, ErrMalformedCursor
	}
	return offset, nil
}

// decodeOr decodes token and falls back to fallback when it is malformed, so a bad
// cursor widens the window instead of failing the request.
func decodeOr(token string, fallback int) int {
	offset, err := DecodeCursor(token)
	if err != nil {
		return fallback
	}
	return offset
}

package domain

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// ULID represents a Universally Unique Lexicographically Sortable Identifier
// @Description A string representation of ULID
// @type string
// @format ulid
type ULID = ulid.ULID

// ParseID parses a path or body identifier, returning ErrInvalidID on failure
func ParseID(id string) (ulid.ULID, error) {
	parsed, err := ulid.Parse(strings.TrimSpace(id))
	if err != nil {
		return ulid.ULID{}, ErrInvalidID.Wrap(err)
	}
	return parsed, nil
}

// NewID returns a fresh ULID for a new record
func NewID() ulid.ULID {
	return ulid.Make()
}

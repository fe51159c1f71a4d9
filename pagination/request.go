package pagination

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrInvalidRequest wraps field validation failures of a Request.
	ErrInvalidRequest = errors.New("pagination: invalid request")
	// ErrConflictingModes is returned when a request mixes offset fields (page, limit)
	// with cursor fields (first, after, last, before).
	ErrConflictingModes = errors.New("pagination: offset and cursor fields cannot be combined")
)

// Mode identifies which pagination contract a Request uses.
type Mode int

const (
	ModeOffset Mode = iota
	ModeCursor
)

func (m Mode) String() string {
	if m == ModeCursor {
		return "cursor"
	}
	return "offset"
}

// Request carries at most one pagination mode. Nil fields are absent.
type Request struct {
	Page   *int    `json:"page,omitempty"`
	Limit  *int    `json:"limit,omitempty"`
	First  *int    `json:"first,omitempty"`
	After  *string `json:"after,omitempty"`
	Last   *int    `json:"last,omitempty"`
	Before *string `json:"before,omitempty"`
}

// Mode reports cursor mode when any cursor field is present.
func (r Request) Mode() Mode {
	if r.First != nil || r.After != nil || r.Last != nil || r.Before != nil {
		return ModeCursor
	}
	return ModeOffset
}

// Validate checks field ranges and rejects requests mixing both modes.
func (r Request) Validate() error {
	if r.Mode() == ModeCursor && (r.Page != nil || r.Limit != nil) {
		return ErrConflictingModes
	}
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Limit, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&r.First, validation.Min(0)),
		validation.Field(&r.Last, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// Int returns a pointer to v. It keeps request literals short.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

package domain

import (
	"fmt"
	"strings"
)

// SearchField identifies which of the two text inputs of a search session is being edited.
type SearchField int

const (
	// FieldOrigin is the departure airport input.
	FieldOrigin SearchField = iota
	// FieldDestination is the arrival airport input.
	FieldDestination
)

// String returns the lowercase name of the field.
func (f SearchField) String() string {
	switch f {
	case FieldOrigin:
		return "origin"
	case FieldDestination:
		return "destination"
	default:
		return fmt.Sprintf("SearchField(%d)", int(f))
	}
}

// IsValid reports whether f is one of the declared fields.
func (f SearchField) IsValid() bool {
	return f == FieldOrigin || f == FieldDestination
}

// MarshalText implements encoding.TextMarshaler.
func (f SearchField) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("invalid search field %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *SearchField) UnmarshalText(text []byte) error {
	parsed, err := ParseSearchField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseSearchField parses "origin" or "destination" (case-insensitive).
// Returns a wrapped ErrInvalidRequest for anything else.
func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "origin":
		return FieldOrigin, nil
	case "destination":
		return FieldDestination, nil
	default:
		return 0, WrapInvalidRequest("field must be one of: origin, destination; got %q", s)
	}
}

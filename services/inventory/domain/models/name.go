package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Name is a value object holding a block, room or item name.
// Surrounding whitespace is trimmed; the result must hold 1 to 255 characters.
type Name string

const (
	minNameLength = 1
	maxNameLength = 255
)

// NewName constructs a valid Name or returns an error if constraints are violated.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minNameLength {
		return "", fmt.Errorf("name must be at least %d character", minNameLength)
	}
	if n > maxNameLength {
		return "", fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	return Name(s), nil
}

// String returns the underlying string value.
func (n Name) String() string {
	return string(n)
}

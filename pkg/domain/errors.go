package domain

import "errors"

// ErrInvalidDivisions is returned when a division count is not positive.
var ErrInvalidDivisions = errors.New("division count must be positive")

// ErrIncompleteElement is returned when an operation requires a fully
// constructed element but one or more points are missing.
var ErrIncompleteElement = errors.New("element is incomplete")

// ErrUnsupportedElement is returned when an element kind outside the
// known set (line, arc) is presented.
var ErrUnsupportedElement = errors.New("unsupported element kind")

// ErrSessionNotFound is returned when a session ID cannot be found.
var ErrSessionNotFound = errors.New("session not found")

package bmfont

import (
	"errors"
	"fmt"
)

// Sentinel errors for bmfont package.
var (
	// ErrCountMismatch is returned when a count record disagrees with the
	// number of records that follow it.
	ErrCountMismatch = errors.New("bmfont: record count mismatch")

	// ErrNoPage is returned when a character or kerning record references a
	// page that does not exist.
	ErrNoPage = errors.New("bmfont: record without page")
)

// SyntaxError describes a malformed descriptor line.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bmfont: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("bmfont: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

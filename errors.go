package findfolder

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the search space was exhausted without a match.
	ErrNotFound = errors.New("folder not found")

	// ErrInvalidSearch is returned when a textual search strategy cannot be parsed.
	ErrInvalidSearch = errors.New("invalid search strategy")
)

// IOError reports a filesystem operation that failed during a search.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is the Not Found outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIOError reports whether err carries an I/O failure.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

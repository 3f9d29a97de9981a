package fetch

import (
	"errors"
	"fmt"
)

// Error describes a failed upstream fetch. Transient errors become terminal
// once the attempt budget is exhausted; application-level errors embedded in
// an otherwise well-formed response are terminal immediately.
type Error struct {
	Path        string
	Status      int
	Message     string
	Terminal    bool
	RateLimited bool
	Err         error
}

func (e *Error) Error() string {
	kind := "transient"
	if e.Terminal {
		kind = "terminal"
	}
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %s (status %d): %s", e.Path, kind, e.Status, e.Message)
	}
	return fmt.Sprintf("fetch %s: %s: %s", e.Path, kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsTerminal reports whether err is a fetch error that should not be retried.
func IsTerminal(err error) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Terminal
	}
	return false
}

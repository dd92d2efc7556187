package roster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by mutations referencing an id that is not in the
// live collection.
var ErrNotFound = errors.New("roster: student not found")

// ValidationError reports the identity-bearing fields missing from an insert.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("roster: missing required fields: %s", strings.Join(e.Missing, ", "))
}

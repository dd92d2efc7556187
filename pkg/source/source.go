// Package source loads the initial roster. The dashboard treats it as an
// opaque collaborator: success yields the full collection, failure yields a
// LoadError the UI turns into a retryable "no data" state.
package source

import (
	"context"
	"fmt"

	"tableflip.dev/roster/pkg/student"
)

// Source produces a full roster.
type Source interface {
	Load(ctx context.Context) ([]student.Student, error)
}

// LoadError wraps whatever went wrong fetching the roster.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("source: load failed: %v", e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

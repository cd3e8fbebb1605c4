package generator

import "fmt"

// CollaboratorError marks a failure of the content collaborator. Callers
// must not persist anything derived from the failed call.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("content generation: %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

package lineage

import (
	"errors"
	"fmt"
)

// Access layer errors
var (
	// ErrNotFound indicates one or more requested artifacts do not exist
	// in the store.
	ErrNotFound = errors.New("artifact not found")

	// ErrInvalidArgument indicates a caller-supplied artifact violates an
	// operation's precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError reports a batch fetch that could not resolve every
// requested ID. The store reports only how many records it returned, not
// which IDs were absent, so the full requested list is carried for
// diagnostics.
type NotFoundError struct {
	IDs []int64 // Full requested ID list
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find all artifacts for ids: %v", e.IDs)
}

// Is reports a match against ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidArgumentError reports an operation invoked with an artifact that
// fails a precondition, identified by its declared type.
type InvalidArgumentError struct {
	Op       string // Operation that rejected the artifact
	TypeName string // Declared type of the offending artifact
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("%s: artifact of type %q: %s", e.Op, e.TypeName, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is reports a match against ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

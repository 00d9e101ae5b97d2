package typegraph

import (
	"errors"
	"fmt"
)

// Recoverable resolution failures. These are expected in normal operation
// and are returned, never panicked; see the package doc for the split
// between these and invariant violations.
var (
	// ErrUnresolvedTypeReference is returned when instantiation reaches a
	// TypeReference that has not been linked to a concrete type node.
	ErrUnresolvedTypeReference = errors.New("unresolved type reference")

	// ErrUnresolvedMountReference is returned when a MakeChild's mount path
	// cannot be resolved against the instance built so far.
	ErrUnresolvedMountReference = errors.New("unresolved mount reference")

	// ErrDuplicateChild is returned when a MakeChild declares an identifier
	// that is already declared at the same mount point of the type.
	ErrDuplicateChild = errors.New("duplicate child identifier")

	// ErrRecursiveType is returned when a type reaches itself through its
	// own MakeChild tree. The registration API accepts forward references,
	// so the cycle can only be seen at instantiation time.
	ErrRecursiveType = errors.New("recursive type definition")

	// ErrMissingParent marks a path segment whose preceding segment resolved
	// to nothing that can have children.
	ErrMissingParent = errors.New("missing parent")

	// ErrMissingChild marks a path segment that does not exist under its
	// parent.
	ErrMissingChild = errors.New("missing child")

	// ErrInvalidIndex marks a numeric path segment used as a collection
	// index that does not exist under the expected mount.
	ErrInvalidIndex = errors.New("invalid index")
)

// PathError reports which segment of a reference chain failed and why. It
// wraps one of the sentinel resolution errors.
type PathError struct {
	Segment string
	Index   int
	Err     error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%v at segment %d (%q)", e.Err, e.Index, e.Segment)
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *PathError) Unwrap() error {
	return e.Err
}

// pathErr wraps a sentinel with segment context.
func pathErr(sentinel error, index int, segment string) error {
	return &PathError{Segment: segment, Index: index, Err: sentinel}
}

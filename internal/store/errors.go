package store

import (
	"errors"
	"fmt"
)

// ConstraintError indicates a write that would violate an append-only,
// ordering or range invariant. The enclosing transaction is rolled back
// and nothing is persisted.
type ConstraintError struct {
	Op     string // operation that was rejected, e.g. "record interaction"
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: constraint violated: %s", e.Op, e.Reason)
}

// NotFoundError indicates a reference to a nonexistent entity.
type NotFoundError struct {
	Kind string // "user", "session", "report"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// IsConstraint reports whether err is (or wraps) a ConstraintError.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

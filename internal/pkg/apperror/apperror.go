package apperror

import (
	"errors"
	"fmt"
)

// Kind is the closed set of domain error categories. Repositories never
// produce these; services raise them at decision points and the HTTP layer
// translates them to status codes.
type Kind int

const (
	// KindNotFound means a required entity is absent.
	KindNotFound Kind = iota + 1
	// KindForbidden means the entity exists but the request is not allowed
	// by a business rule.
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Error is a domain error carrying the entity it refers to and, when known,
// the entity's id. It wraps an optional underlying cause.
type Error struct {
	Kind   Kind
	Entity string // e.g. "enrollment", "room", "booking"
	ID     int64  // 0 when the id is unknown or not applicable
	Err    error
}

func (e *Error) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d %s", e.Entity, e.ID, e.Kind)
	}
	return fmt.Sprintf("%s %s", e.Entity, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates an Error reporting an absent entity.
func NotFound(entity string, id int64) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// Forbidden creates an Error reporting a business-rule rejection.
func Forbidden(entity string, id int64) *Error {
	return &Error{Kind: KindForbidden, Entity: entity, ID: id}
}

// IsNotFound reports whether err is a domain error of kind KindNotFound.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsForbidden reports whether err is a domain error of kind KindForbidden.
func IsForbidden(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindForbidden
}

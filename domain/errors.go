package domain

import "errors"

// Error categories. Every error returned by a service wraps exactly one of
// them; the HTTP layer maps the category to a status code.
var (
	ErrValidation             = errors.New("validation error")
	ErrAuthenticationRequired = errors.New("authentication credentials were not provided")
	ErrPermissionDenied       = errors.New("you do not have permission to perform this action")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("already exists")
)

// Error is a categorized error with an optional request field it refers to.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewValidationError(field, message string) *Error {
	return &Error{Kind: ErrValidation, Field: field, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

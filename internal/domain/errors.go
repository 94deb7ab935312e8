package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart indicates an order was requested from a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrProtected indicates a delete was refused because other rows still
	// reference the target.
	ErrProtected = errors.New("protected by existing references")
	// ErrIntegrity indicates the store rejected a write due to a
	// referential constraint.
	ErrIntegrity = errors.New("integrity violation")
)

// InvalidError marks input that fails validation; the HTTP layer maps
// it to a 400 response carrying the message.
type InvalidError struct {
	Msg string
}

func (e *InvalidError) Error() string { return e.Msg }

func Invalid(msg string) error { return &InvalidError{Msg: msg} }

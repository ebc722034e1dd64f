package services

import (
	"errors"
	"fmt"

	"bufood/entity"
)

// Service errors are matched by the API layer with errors.Is; the typed
// wrappers carry enough detail for the client to render an actionable message.
var (
	ErrForbidden                = errors.New("forbidden")
	ErrNotFound                 = errors.New("not found")
	ErrConcurrentModification   = errors.New("order was modified concurrently")
	ErrEmptyCart                = errors.New("cart is empty")
	ErrInvalidPayload           = errors.New("invalid payload")
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
	ErrMissingRequiredField     = errors.New("missing required field")
)

// InvalidTransitionError names both ends of a rejected status change.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// MissingFieldError names the field a transition payload lacked.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingRequiredField }

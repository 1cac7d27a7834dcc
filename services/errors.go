// errors.go - Domain error taxonomy shared by services and handlers
//
// Handlers translate these into HTTP status codes; anything not matching
// one of them is treated as an internal error and surfaced generically.

package services

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken means the registration email already has an account (409).
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password (401).
	// Callers must not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// NotFoundError reports a missing entity (404).
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ValidationError reports malformed or out-of-range input (400). Its
// message is safe to surface verbatim to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// InsufficientStockError means a requested quantity exceeds the product's
// available stock (400).
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductName)
}

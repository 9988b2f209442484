// Package apperr holds the sentinel errors shared by repositories, services
// and controllers. Handlers map them to HTTP statuses with errors.Is instead
// of matching message strings.
package apperr

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
)

package models

import "github.com/pkg/errors"

// Workflow error taxonomy. Handlers wrap these with context via
// errors.Wrap, controllers match with errors.Is to pick the HTTP status.
// Every failed operation leaves the stored record untouched.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("operation not permitted for this role")
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyDecided    = errors.New("stage already decided")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
)

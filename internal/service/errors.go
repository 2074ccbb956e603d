package service

import "errors"

// Failure taxonomy shared by every service; handlers translate these into
// HTTP statuses. Anything not wrapping one of them is a store error and
// surfaces as a generic 500.
var (
	ErrValidation   = errors.New("validation")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

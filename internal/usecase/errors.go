package usecase

import "errors"

// Service-level error taxonomy. Handlers translate these into status codes:
// ErrValidation → 400, ErrInvalidCredentials/ErrNotFound → 404,
// ErrForbidden/ErrConflictDeleted → 403, ErrConflict → 409.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrConflictDeleted    = errors.New("exists but deleted, restore instead")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

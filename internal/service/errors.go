package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions shared across services ---

// ErrValidation marks errors caused by a malformed or incomplete request.
// Callers can wrap it with detail via fmt.Errorf("%w: ...", ErrValidation)
// and the API layer maps anything matching it to a client error.
var ErrValidation = errors.New("validation failed")

// ErrInvalidID is a validation error for identifiers that are not valid
// storage keys, distinct from not-found which covers syntactically valid
// but absent ids.
var ErrInvalidID = fmt.Errorf("%w: invalid id format", ErrValidation)

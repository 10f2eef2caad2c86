package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors - Validation
var (
	ErrValidation      = errors.New("invalid input")
	ErrInvalidUsername = fmt.Errorf("%w: username must contain 3 to 16 letters", ErrValidation)
	ErrInvalidPassword = fmt.Errorf("%w: password must contain 6 to 32 letters or digits", ErrValidation)
)

// Sentinel errors - Authentication
var (
	ErrAuth                 = errors.New("invalid credentials")
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrAlreadyAuthenticated = errors.New("already logged in")
)

// Sentinel errors - Storage
var (
	ErrConflict = errors.New("username already taken")
	ErrNotFound = errors.New("username does not exist")
	ErrStorage  = errors.New("database error")
)

// HTTPStatus maps an error to the status code the API reports it with.
// Unrecognized errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrAlreadyAuthenticated),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth), errors.Is(err, ErrNotLoggedIn):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

package domain

import "errors"

// Client-facing failures. The messages are surfaced verbatim in the
// {"error": ...} body, so they stay in the product's language.
var (
	// ErrEmailTaken means a user with that email already exists.
	ErrEmailTaken = errors.New("El correo ya se encuentra registrado.")

	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell which factor failed.
	ErrInvalidCredentials = errors.New("Correo o contraseña incorrectos.")
)

// ValidationError reports the first registration rule a request violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

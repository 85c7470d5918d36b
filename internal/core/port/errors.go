package port

import "errors"

var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned for an unknown user, a wrong
	// password or a disabled account.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken is returned for missing, malformed or expired tokens.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrUserExists is returned when creating an account that already exists.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidInput is returned for payloads the use cases reject.
	ErrInvalidInput = errors.New("invalid input")
)

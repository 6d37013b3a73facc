// Package apperr holds the sentinel errors shared across layers. Delivery code
// matches them with errors.Is and maps them to HTTP statuses.
package apperr

import "errors"

var (
	// ErrEmailTaken signals a registration or profile update against an email
	// that already belongs to another account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid token")

	ErrTokenExpired = errors.New("token expired")

	// ErrUserNotFound means a token's subject no longer resolves to an account.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound means the record does not exist for the calling user. A record
	// owned by someone else reports the same error.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest marks malformed input recovered at the boundary, such as an
	// unknown status name or an unparseable date.
	ErrBadRequest = errors.New("invalid request")
)

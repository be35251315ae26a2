package usecase

import "errors"

// Domain sentinels. Handlers map these to HTTP status codes at the request
// boundary; nothing below the boundary leaks store details to the caller.
var (
	// ErrValidation covers missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means national-id, email or phone already registered.
	ErrConflict = errors.New("identity already registered")
	// ErrUnauthorized deliberately carries one message for "not found",
	// "not verified" and "wrong secret" so callers cannot enumerate accounts.
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrInvalidOrExpiredCode covers wrong id, wrong code and expired code
	// alike; the store predicate makes them indistinguishable.
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	// ErrNotFound is returned for profile operations on unknown identities.
	ErrNotFound = errors.New("identity not found")
)

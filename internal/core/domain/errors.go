package domain

import "errors"

var (
	// ErrInvalidCredentials merges "no such user" and "wrong password" so the
	// two cases are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrTokenInvalid covers every bearer token failure (malformed, bad
	// signature, expired). The concrete reason is logged, never returned.
	ErrTokenInvalid = errors.New("could not validate credentials")

	ErrEmailTaken            = errors.New("email already registered")
	ErrUserNotFound          = errors.New("user not found")
	ErrAccountInactive       = errors.New("inactive user")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")

	// ErrItemNotFound covers both "does not exist" and "exists but owned by
	// someone else"; the two are never distinguished in responses.
	ErrItemNotFound = errors.New("item not found")
)

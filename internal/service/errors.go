package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")

	// ErrSessionIsExpiredOrInvalid is the normalised authentication failure:
	// callers are never told which of missing, malformed, revoked, or expired
	// applied.
	ErrSessionIsExpiredOrInvalid = errors.New("session is expired or invalid")

	// ErrNotOwner is returned when an authenticated user attempts to mutate
	// a post or comment authored by somebody else.
	ErrNotOwner = errors.New("caller is not the author")
)

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidListID is returned when an external list id does not decode.
	ErrInvalidListID = errors.New("invalid list id")

	// ErrInvalidRevisionID is returned when an external revision id does not
	// decode.
	ErrInvalidRevisionID = errors.New("invalid revision id")

	// ErrCorruptList is returned when a stored revision can no longer be
	// parsed. It is a server-side fault, unlike a client sending bad contents.
	ErrCorruptList = errors.New("stored list contents are corrupt")

	// ErrInvalidSecretKey is returned by an API-key login with an unknown key.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

package models

import "errors"

var (
	// ErrInvalidContents is wrapped by every *ContentsError.
	ErrInvalidContents = errors.New("invalid list contents")

	// ErrItemNotFound is returned when no item carries the requested ident.
	ErrItemNotFound = errors.New("list item not found")
)

// ContentsError describes why stored or submitted list contents could not be
// decoded into a List.
type ContentsError struct {
	Reason string
}

func (e *ContentsError) Error() string {
	return ErrInvalidContents.Error() + ": " + e.Reason
}

func (e *ContentsError) Unwrap() error {
	return ErrInvalidContents
}

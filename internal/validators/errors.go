package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleTooLong     = errors.New("title is too long")
	ErrInvalidURL       = errors.New("url must be an absolute http or https url")
	ErrURLTooLong       = errors.New("url is too long")
	ErrNotesTooLong     = errors.New("notes are too long")
	ErrEmptyContents    = errors.New("contents are required")
	ErrContentsTooLarge = errors.New("contents are too large")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptyIdent       = errors.New("item ident is required")
	ErrEmptyRevisionID  = errors.New("revision id is required")

	ErrEmptySecretKey  = errors.New("secret key is required")
	ErrInvalidProvider = errors.New("unsupported identity provider")
	ErrEmptyNaturalKey = errors.New("natural key is required")
)

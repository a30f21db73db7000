package validators

import (
	"context"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/MKhiriev/help-me-shop/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the list or item title.
	FieldTitle = "title"

	// FieldURL targets the optional link of an item.
	FieldURL = "url"

	// FieldNotes targets the free-form notes of an item.
	FieldNotes = "notes"

	// FieldContents targets the raw contents of a replace request.
	FieldContents = "contents"

	// FieldPatch requires at least one field of an item update to be set.
	FieldPatch = "patch"

	// FieldSecretKey targets the secret of an API-key login.
	FieldSecretKey = "secret_key"

	// FieldProvider targets the provider of an external identity.
	FieldProvider = "provider"

	// FieldNaturalKey targets the provider-scoped natural key.
	FieldNaturalKey = "natural_key"
)

// Limits on user supplied list data.
const (
	MaxTitleLength    = 256
	MaxURLLength      = 2048
	MaxNotesLength    = 4096
	MaxContentsLength = 1 << 20
)

// RequestValidator implements [Validator] for the list and identity request
// models: CreateListRequest, ReplaceListRequest, AddItemRequest,
// UpdateItemRequest, APIKeyLoginRequest and ExternalIdentity. Value and
// pointer forms are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty every
// field of the model is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateListRequest:
		return v.validateCreateList(value, fields...)
	case *models.CreateListRequest:
		return v.validateCreateList(*value, fields...)
	case models.ReplaceListRequest:
		return v.validateReplaceList(value, fields...)
	case *models.ReplaceListRequest:
		return v.validateReplaceList(*value, fields...)
	case models.AddItemRequest:
		return v.validateAddItem(value, fields...)
	case *models.AddItemRequest:
		return v.validateAddItem(*value, fields...)
	case models.UpdateItemRequest:
		return v.validateUpdateItem(value, fields...)
	case *models.UpdateItemRequest:
		return v.validateUpdateItem(*value, fields...)
	case models.APIKeyLoginRequest:
		return v.validateAPIKeyLogin(value, fields...)
	case *models.APIKeyLoginRequest:
		return v.validateAPIKeyLogin(*value, fields...)
	case models.ExternalIdentity:
		return v.validateIdentity(value, fields...)
	case *models.ExternalIdentity:
		return v.validateIdentity(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCreateList(req models.CreateListRequest, fields ...string) error {
	return validateFields(fields, []string{FieldTitle}, func(field string) error {
		switch field {
		case FieldTitle:
			return validateTitle(req.Title)
		}
		return unknownField(field)
	})
}

func (v *RequestValidator) validateReplaceList(req models.ReplaceListRequest, fields ...string) error {
	return validateFields(fields, []string{FieldContents}, func(field string) error {
		switch field {
		case FieldContents:
			if len(req.Contents) == 0 || string(req.Contents) == "null" {
				return ErrEmptyContents
			}
			if len(req.Contents) > MaxContentsLength {
				return ErrContentsTooLarge
			}
			return nil
		}
		return unknownField(field)
	})
}

func (v *RequestValidator) validateAddItem(req models.AddItemRequest, fields ...string) error {
	return validateFields(fields, []string{FieldTitle, FieldURL, FieldNotes}, func(field string) error {
		switch field {
		case FieldTitle:
			return validateTitle(req.Title)
		case FieldURL:
			return validateURL(req.URL)
		case FieldNotes:
			return validateNotes(req.Notes)
		}
		return unknownField(field)
	})
}

func (v *RequestValidator) validateUpdateItem(req models.UpdateItemRequest, fields ...string) error {
	return validateFields(fields, []string{FieldPatch, FieldTitle, FieldURL, FieldNotes}, func(field string) error {
		switch field {
		case FieldPatch:
			if req.Title == nil && req.URL == nil && req.Notes == nil {
				return ErrNoFieldsToUpdate
			}
			return nil
		case FieldTitle:
			if req.Title == nil {
				return nil
			}
			return validateTitle(*req.Title)
		case FieldURL:
			if req.URL == nil {
				return nil
			}
			return validateURL(*req.URL)
		case FieldNotes:
			if req.Notes == nil {
				return nil
			}
			return validateNotes(*req.Notes)
		}
		return unknownField(field)
	})
}

func (v *RequestValidator) validateAPIKeyLogin(req models.APIKeyLoginRequest, fields ...string) error {
	return validateFields(fields, []string{FieldSecretKey}, func(field string) error {
		switch field {
		case FieldSecretKey:
			if req.SecretKey == "" {
				return ErrEmptySecretKey
			}
			return nil
		}
		return unknownField(field)
	})
}

func (v *RequestValidator) validateIdentity(identity models.ExternalIdentity, fields ...string) error {
	return validateFields(fields, []string{FieldProvider, FieldNaturalKey}, func(field string) error {
		switch field {
		case FieldProvider:
			if !identity.Provider.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidProvider, identity.Provider)
			}
			return nil
		case FieldNaturalKey:
			if identity.NaturalKey == "" {
				return ErrEmptyNaturalKey
			}
			return nil
		}
		return unknownField(field)
	})
}

// validateFields runs check for every requested field, or for defaults when
// none were requested, and returns the first failure.
func validateFields(fields, defaults []string, check func(field string) error) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, field := range fields {
		if err := check(field); err != nil {
			return err
		}
	}

	return nil
}

func unknownField(field string) error {
	return fmt.Errorf("%w: %s", ErrUnknownField, field)
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateNotes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// validateURL accepts an empty url (no link) or an absolute http(s) url.
func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	if len(raw) > MaxURLLength {
		return ErrURLTooLong
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL
	}

	return nil
}

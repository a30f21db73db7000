// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the list and
// identity services.
//
// A [Validator] accepts any supported model and an optional list of field
// names. With no field names every field of the model is checked; otherwise
// only the named ones are. Errors are package sentinels matched with
// errors.Is, and the HTTP layer maps all of them to 400 Bad Request.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

package models

import "encoding/json"

// CreateListRequest is the body of POST /api/lists. An empty title yields
// DefaultListTitle.
type CreateListRequest struct {
	Title string `json:"title"`
}

// ReplaceListRequest is the body of PUT /api/lists/{listID}. When RevisionID
// is set the write only succeeds if it is still the latest revision.
type ReplaceListRequest struct {
	RevisionID string          `json:"revision_id,omitempty"`
	Contents   json.RawMessage `json:"contents"`
}

// AddItemRequest is the body of POST /api/lists/{listID}/items.
type AddItemRequest struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// UpdateItemRequest is the body of PUT /api/lists/{listID}/items/{ident}.
type UpdateItemRequest struct {
	ItemPatch
}

// APIKeyLoginRequest is the body of POST /api/auth/login.
type APIKeyLoginRequest struct {
	SecretKey string `json:"secret_key"`
}

package models

import (
	"fmt"
	"time"
)

// IDEncoder maps a stored id to its external form.
type IDEncoder func(id string) (string, error)

// ListView is the API representation of a list: external ids, title and
// items. Items without url/notes omit those keys.
type ListView struct {
	ListID     string     `json:"list_id"`
	RevisionID string     `json:"revision_id"`
	EditedAt   time.Time  `json:"edited_at"`
	Title      string     `json:"title"`
	Items      []ListItem `json:"list_items"`
}

// View builds the API representation of l, encoding ids with encode.
func (l *List) View(encode IDEncoder) (ListView, error) {
	listID, err := encode(l.ListID)
	if err != nil {
		return ListView{}, fmt.Errorf("error encoding list id: %w", err)
	}
	revisionID, err := encode(l.RevisionID)
	if err != nil {
		return ListView{}, fmt.Errorf("error encoding revision id: %w", err)
	}

	items := l.Items
	if items == nil {
		items = []ListItem{}
	}

	return ListView{
		ListID:     listID,
		RevisionID: revisionID,
		EditedAt:   l.EditedAt.UTC(),
		Title:      l.Title,
		Items:      items,
	}, nil
}

// ListsResponse is returned by the "my lists" endpoint.
type ListsResponse struct {
	Lists []ListView `json:"lists"`

	// Length is the number of entries in Lists.
	Length int `json:"length"`
}

// RevisionView is one entry of a list's history.
type RevisionView struct {
	RevisionID string    `json:"revision_id"`
	EditedAt   time.Time `json:"edited_at"`
	Title      string    `json:"title"`
}

// RevisionsResponse is returned by the list history endpoint, newest first.
type RevisionsResponse struct {
	ListID    string         `json:"list_id"`
	Revisions []RevisionView `json:"revisions"`
	Length    int            `json:"length"`
}

// AuthResponse is returned by the login endpoints alongside the
// Authorization header. SecretKey is only present right after an API key is
// issued.
type AuthResponse struct {
	UserID    string `json:"user_id"`
	SecretKey string `json:"secret_key,omitempty"`
}

// ItemResponse is returned by the item endpoints: the changed item and the
// list revision that now holds it.
type ItemResponse struct {
	Item ListItem `json:"item"`
	List ListView `json:"list"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"time"
)

const (
	// SchemaVersion is the contents layout written by this build. Contents
	// without a schema_version are treated as version 1.
	SchemaVersion = 1

	// DefaultListTitle is the title of a list created without one.
	DefaultListTitle = "New list"
)

// keys owned by List; every other top-level key is carried through untouched
const (
	keySchemaVersion = "schema_version"
	keyTitle         = "title"
	keyListItems     = "list_items"
)

// List is the decoded form of one list revision: its identity plus the
// parsed contents. Mutations only change the in-memory value; persisting
// them means writing Contents() as a new revision.
type List struct {
	RevisionID string
	ListID     string
	AuthorID   string
	EditedAt   time.Time

	Title string
	Items []ListItem

	// extra keeps unknown top-level keys so a rewrite does not lose them
	extra map[string]json.RawMessage
}

// NewList returns an empty list with the given title (DefaultListTitle when
// empty). It has no identity until it is stored.
func NewList(title string) *List {
	if title == "" {
		title = DefaultListTitle
	}
	return &List{Title: title, Items: []ListItem{}}
}

// ParseList decodes stored contents. A JSON object with a string title is
// required; list_items may be absent (no items) but must be an array when
// present. Items missing an ident or a string title are skipped.
func ParseList(revisionID, listID string, contents string, editedAt time.Time) (*List, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(contents), &fields); err != nil {
		return nil, &ContentsError{Reason: fmt.Sprintf("not a JSON object: %v", err)}
	}
	if fields == nil {
		return nil, &ContentsError{Reason: "not a JSON object"}
	}

	if rawVersion, ok := fields[keySchemaVersion]; ok {
		var version int
		if err := json.Unmarshal(rawVersion, &version); err != nil {
			return nil, &ContentsError{Reason: "schema_version is not an integer"}
		}
		if version < 1 || version > SchemaVersion {
			return nil, &ContentsError{Reason: "unsupported schema_version " + strconv.Itoa(version)}
		}
	}

	l := &List{
		RevisionID: revisionID,
		ListID:     listID,
		EditedAt:   editedAt,
		Items:      []ListItem{},
	}

	rawTitle, ok := fields[keyTitle]
	if !ok {
		return nil, &ContentsError{Reason: "title is missing"}
	}
	if err := json.Unmarshal(rawTitle, &l.Title); err != nil || string(rawTitle) == "null" {
		return nil, &ContentsError{Reason: "title is not a string"}
	}

	if rawItems, ok := fields[keyListItems]; ok && string(rawItems) != "null" {
		var items []json.RawMessage
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return nil, &ContentsError{Reason: "list_items is not an array"}
		}
		for _, raw := range items {
			if item, ok := decodeItem(raw); ok {
				l.Items = append(l.Items, item)
			}
		}
	}

	for key, raw := range fields {
		switch key {
		case keySchemaVersion, keyTitle, keyListItems:
			continue
		}
		if l.extra == nil {
			l.extra = make(map[string]json.RawMessage)
		}
		l.extra[key] = raw
	}

	return l, nil
}

// ParseRevision is ParseList over a stored revision; the author is carried
// over as well.
func ParseRevision(rev ListRevision) (*List, error) {
	l, err := ParseList(rev.RevisionID, rev.ListID, rev.Contents, rev.EditedAt)
	if err != nil {
		return nil, err
	}
	l.AuthorID = rev.AuthorID
	return l, nil
}

// Contents returns the persisted JSON form. Keys are emitted in sorted order
// so equal lists always serialize to equal bytes.
func (l *List) Contents() (string, error) {
	out := make(map[string]any, len(l.extra)+3)
	for key, raw := range l.extra {
		out[key] = raw
	}

	items := l.Items
	if items == nil {
		items = []ListItem{}
	}

	out[keySchemaVersion] = SchemaVersion
	out[keyTitle] = l.Title
	out[keyListItems] = items

	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("error encoding list contents: %w", err)
	}
	return string(b), nil
}

// NextIdent returns the ident the next added item gets: one more than the
// largest integer ident, or "1" when there is none. Idents are not bounded
// by any integer width, so the result is always greater than every
// existing integer ident.
func (l *List) NextIdent() string {
	highest := new(big.Int)
	for _, item := range l.Items {
		if n, ok := numericIdent(item.Ident); ok && n.Cmp(highest) > 0 {
			highest = n
		}
	}
	return new(big.Int).Add(highest, big.NewInt(1)).String()
}

// AddItem appends a new item and returns it.
func (l *List) AddItem(title, url, notes string) ListItem {
	if title == "" {
		title = DefaultItemTitle
	}

	item := ListItem{
		Ident: l.NextIdent(),
		Title: title,
		URL:   url,
		Notes: notes,
	}
	l.Items = append(l.Items, item)

	return item
}

// Item returns the item with the given ident.
func (l *List) Item(ident string) (ListItem, bool) {
	i := l.indexOf(ident)
	if i < 0 {
		return ListItem{}, false
	}
	return l.Items[i], true
}

// UpdateItem applies patch to the item with the given ident.
func (l *List) UpdateItem(ident string, patch ItemPatch) (ListItem, error) {
	i := l.indexOf(ident)
	if i < 0 {
		return ListItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, ident)
	}

	item := &l.Items[i]
	if patch.Title != nil {
		item.Title = *patch.Title
		if item.Title == "" {
			item.Title = DefaultItemTitle
		}
	}
	if patch.URL != nil {
		item.URL = *patch.URL
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}

	return *item, nil
}

// RemoveItem deletes the item with the given ident. Idents of the remaining
// items do not change.
func (l *List) RemoveItem(ident string) error {
	i := l.indexOf(ident)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, ident)
	}

	l.Items = slices.Delete(l.Items, i, i+1)
	return nil
}

func (l *List) indexOf(ident string) int {
	return slices.IndexFunc(l.Items, func(item ListItem) bool {
		return item.Ident == ident
	})
}

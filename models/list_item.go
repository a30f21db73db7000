package models

import (
	"bytes"
	"encoding/json"
	"math/big"
)

// DefaultItemTitle is used when an item is added without a title.
const DefaultItemTitle = "List item title"

// ListItem is one entry of a list. Ident is unique within its list.
type ListItem struct {
	Ident string `json:"ident"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ItemPatch carries the fields of an item update. Nil fields are left
// untouched; a non-nil empty URL or Notes clears the field.
type ItemPatch struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// numericIdent returns the value of a non-negative integer ident of any
// size and whether it is one.
func numericIdent(ident string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(ident, 10)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

// decodeItem turns one raw list_items element into a ListItem. It reports
// false for elements that are not objects, have no usable ident, or have a
// non-string title.
func decodeItem(raw json.RawMessage) (ListItem, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return ListItem{}, false
	}

	ident, ok := decodeIdent(fields["ident"])
	if !ok {
		return ListItem{}, false
	}

	var item ListItem
	item.Ident = ident

	rawTitle, ok := fields["title"]
	if !ok || json.Unmarshal(rawTitle, &item.Title) != nil {
		return ListItem{}, false
	}

	// optional fields of the wrong type are dropped rather than failing the item
	_ = decodeOptionalString(fields["url"], &item.URL)
	_ = decodeOptionalString(fields["notes"], &item.Notes)

	return item, true
}

// decodeIdent accepts both string and integer idents.
func decodeIdent(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, s != ""
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", false
	}
	// integers only, without an upper bound
	if _, ok := new(big.Int).SetString(n.String(), 10); !ok {
		return "", false
	}
	return n.String(), true
}

func decodeOptionalString(raw json.RawMessage, dst *string) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

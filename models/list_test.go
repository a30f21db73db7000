// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEditedAt = time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC)

const groceries = `{
	"title": "Groceries",
	"color": "green",
	"list_items": [
		{"ident": 1, "title": "Milk"},
		{"ident": "2", "title": "Bread", "url": "https://bakery.example/bread", "notes": "whole grain"}
	]
}`

func TestParseList_Success(t *testing.T) {
	l, err := ParseList("rev", "list", groceries, testEditedAt)
	require.NoError(t, err)

	assert.Equal(t, "rev", l.RevisionID)
	assert.Equal(t, "list", l.ListID)
	assert.Equal(t, testEditedAt, l.EditedAt)
	assert.Equal(t, "Groceries", l.Title)
	assert.Equal(t, []ListItem{
		{Ident: "1", Title: "Milk"},
		{Ident: "2", Title: "Bread", URL: "https://bakery.example/bread", Notes: "whole grain"},
	}, l.Items)
}

func TestParseList_MissingItemsMeansEmpty(t *testing.T) {
	l, err := ParseList("rev", "list", `{"title":"Empty"}`, testEditedAt)
	require.NoError(t, err)

	assert.Empty(t, l.Items)
	assert.NotNil(t, l.Items)
}

func TestParseList_NullItemsMeansEmpty(t *testing.T) {
	l, err := ParseList("rev", "list", `{"title":"Empty","list_items":null}`, testEditedAt)
	require.NoError(t, err)
	assert.Empty(t, l.Items)
}

func TestParseList_SkipsInvalidItems(t *testing.T) {
	contents := `{"title":"T","list_items":[
		{"ident":"1","title":"ok"},
		{"title":"no ident"},
		{"ident":"3"},
		{"ident":"4","title":7},
		{"ident":1.5,"title":"fractional ident"},
		"not an object",
		{"ident":"6","title":"bad url type","url":12}
	]}`

	l, err := ParseList("rev", "list", contents, testEditedAt)
	require.NoError(t, err)

	assert.Equal(t, []ListItem{
		{Ident: "1", Title: "ok"},
		{Ident: "6", Title: "bad url type"},
	}, l.Items)
}

func TestParseList_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"not json", `{"title":`},
		{"array", `[]`},
		{"null", `null`},
		{"missing title", `{"list_items":[]}`},
		{"null title", `{"title":null}`},
		{"numeric title", `{"title":42}`},
		{"items not array", `{"title":"T","list_items":{"ident":"1"}}`},
		{"future schema", `{"title":"T","schema_version":2}`},
		{"zero schema", `{"title":"T","schema_version":0}`},
		{"schema not int", `{"title":"T","schema_version":"1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ParseList("rev", "list", tt.contents, testEditedAt)
			require.Error(t, err)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, ErrInvalidContents)

			var contentsErr *ContentsError
			assert.True(t, errors.As(err, &contentsErr))
			assert.NotEmpty(t, contentsErr.Reason)
		})
	}
}

func TestParseRevision_CarriesAuthor(t *testing.T) {
	l, err := ParseRevision(ListRevision{
		RevisionID: "rev",
		ListID:     "list",
		AuthorID:   "author",
		EditedAt:   testEditedAt,
		Contents:   `{"title":"T"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "author", l.AuthorID)
}

func TestList_NextIdent(t *testing.T) {
	tests := []struct {
		name  string
		items []ListItem
		want  string
	}{
		{"empty", nil, "1"},
		{"sequential", []ListItem{{Ident: "1"}, {Ident: "2"}}, "3"},
		{"gap", []ListItem{{Ident: "1"}, {Ident: "7"}, {Ident: "3"}}, "8"},
		{"non integer ignored", []ListItem{{Ident: "a"}, {Ident: "4"}}, "5"},
		{"only non integer", []ListItem{{Ident: "x"}}, "1"},
		{"negative ignored", []ListItem{{Ident: "-5"}}, "1"},
		{"beyond int64", []ListItem{{Ident: "9223372036854775807"}}, "9223372036854775808"},
		{"beyond uint64", []ListItem{{Ident: "18446744073709551615"}, {Ident: "2"}}, "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &List{Items: tt.items}
			assert.Equal(t, tt.want, l.NextIdent())
		})
	}
}

func TestList_AddItem(t *testing.T) {
	l := NewList("")
	assert.Equal(t, DefaultListTitle, l.Title)

	first := l.AddItem("", "", "")
	second := l.AddItem("Apples", "https://shop.example/apples", "green ones")

	assert.Equal(t, ListItem{Ident: "1", Title: DefaultItemTitle}, first)
	assert.Equal(t, ListItem{Ident: "2", Title: "Apples", URL: "https://shop.example/apples", Notes: "green ones"}, second)
	assert.Len(t, l.Items, 2)
}

func TestList_AddItemAfterLargestInt64Ident(t *testing.T) {
	l, err := ParseList("r", "l", `{"title":"t","list_items":[{"ident":9223372036854775807,"title":"a"}]}`, testEditedAt)
	require.NoError(t, err)
	require.Len(t, l.Items, 1)

	first := l.AddItem("b", "", "")
	second := l.AddItem("c", "", "")

	assert.Equal(t, "9223372036854775808", first.Ident)
	assert.Equal(t, "9223372036854775809", second.Ident)

	require.NoError(t, l.RemoveItem(first.Ident))
	item, ok := l.Item(second.Ident)
	require.True(t, ok)
	assert.Equal(t, "c", item.Title)
}

func TestParseList_IntegerIdentsOfAnySize(t *testing.T) {
	l, err := ParseList("r", "l", `{"title":"t","list_items":[
		{"ident":123456789012345678901234567890,"title":"huge"},
		{"ident":1.5,"title":"fraction"},
		{"ident":2,"title":"small"}
	]}`, testEditedAt)
	require.NoError(t, err)

	require.Len(t, l.Items, 2)
	assert.Equal(t, "123456789012345678901234567890", l.Items[0].Ident)
	assert.Equal(t, "123456789012345678901234567891", l.NextIdent())
}

func TestList_AddItemAfterRemoveKeepsIdentsUnique(t *testing.T) {
	l := NewList("T")
	l.AddItem("a", "", "")
	l.AddItem("b", "", "")
	l.AddItem("c", "", "")

	require.NoError(t, l.RemoveItem("2"))
	added := l.AddItem("d", "", "")

	assert.Equal(t, "4", added.Ident)

	seen := map[string]bool{}
	for _, item := range l.Items {
		assert.False(t, seen[item.Ident], "duplicate ident %s", item.Ident)
		seen[item.Ident] = true
	}
}

func TestList_UpdateItem(t *testing.T) {
	l := NewList("T")
	l.AddItem("Milk", "https://milk.example", "2 litres")

	title := "Oat milk"
	empty := ""
	updated, err := l.UpdateItem("1", ItemPatch{Title: &title, Notes: &empty})
	require.NoError(t, err)

	assert.Equal(t, ListItem{Ident: "1", Title: "Oat milk", URL: "https://milk.example"}, updated)
	got, ok := l.Item("1")
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

func TestList_UpdateItemEmptyTitleFallsBackToDefault(t *testing.T) {
	l := NewList("T")
	l.AddItem("Milk", "", "")

	empty := ""
	updated, err := l.UpdateItem("1", ItemPatch{Title: &empty})
	require.NoError(t, err)
	assert.Equal(t, DefaultItemTitle, updated.Title)
}

func TestList_UpdateItemNotFound(t *testing.T) {
	l := NewList("T")

	_, err := l.UpdateItem("9", ItemPatch{})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestList_RemoveItem(t *testing.T) {
	l := NewList("T")
	l.AddItem("a", "", "")
	l.AddItem("b", "", "")

	require.NoError(t, l.RemoveItem("1"))
	assert.Equal(t, []ListItem{{Ident: "2", Title: "b"}}, l.Items)

	assert.ErrorIs(t, l.RemoveItem("1"), ErrItemNotFound)
}

func TestList_ContentsGolden(t *testing.T) {
	l, err := ParseList("rev", "list", groceries, testEditedAt)
	require.NoError(t, err)
	l.AddItem("Eggs", "", "")

	contents, err := l.Contents()
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden.json"))
	g.Assert(t, "list_contents", []byte(contents))
}

func TestList_ContentsRoundTrip(t *testing.T) {
	l, err := ParseList("rev", "list", groceries, testEditedAt)
	require.NoError(t, err)

	contents, err := l.Contents()
	require.NoError(t, err)

	again, err := ParseList("rev", "list", contents, testEditedAt)
	require.NoError(t, err)

	assert.Equal(t, l.Title, again.Title)
	assert.Equal(t, l.Items, again.Items)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(contents), &raw))
	assert.Equal(t, "green", raw["color"], "unknown keys must survive a rewrite")
	assert.EqualValues(t, SchemaVersion, raw["schema_version"])
}

func TestList_ContentsOfNewListHasEmptyItemsArray(t *testing.T) {
	contents, err := (&List{Title: "T"}).Contents()
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema_version":1,"title":"T","list_items":[]}`, contents)
}

func TestList_View(t *testing.T) {
	l, err := ParseList("rev", "list", groceries, testEditedAt.In(time.FixedZone("X", 3600)))
	require.NoError(t, err)

	view, err := l.View(func(id string) (string, error) { return "enc-" + id, nil })
	require.NoError(t, err)

	assert.Equal(t, "enc-list", view.ListID)
	assert.Equal(t, "enc-rev", view.RevisionID)
	assert.Equal(t, time.UTC, view.EditedAt.Location())
	assert.Len(t, view.Items, 2)

	b, err := json.Marshal(view.Items[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"ident":"1","title":"Milk"}`, string(b))
}

func TestList_ViewEncodeError(t *testing.T) {
	l := NewList("T")

	_, err := l.View(func(string) (string, error) { return "", errors.New("bad id") })
	assert.Error(t, err)
}

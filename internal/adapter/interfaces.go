// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the help-me-shop HTTP API.
//
// [ServerAdapter] decouples the command-line client from the transport. The
// package ships a resty based implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/help-me-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a help-me-shop server. List and revision ids are
// the encoded ids the server hands out.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an API key user. The returned response carries the
	// secret key, which the server never shows again. The bearer token is
	// stored via SetToken.
	Register(ctx context.Context) (models.AuthResponse, error)
	// Login exchanges a secret key for a bearer token and stores it.
	Login(ctx context.Context, secretKey string) (models.AuthResponse, error)

	Version(ctx context.Context) (string, error)

	// MyLists returns the latest revision of every list the user edited.
	MyLists(ctx context.Context) (models.ListsResponse, error)
	CreateList(ctx context.Context, title string) (models.ListView, error)
	GetList(ctx context.Context, listID string) (models.ListView, error)
	History(ctx context.Context, listID string) (models.RevisionsResponse, error)
	// ReplaceList overwrites the contents of listID. A non-empty
	// req.RevisionID makes the write fail with ErrConflict when the list
	// changed since that revision.
	ReplaceList(ctx context.Context, listID string, req models.ReplaceListRequest) (models.ListView, error)
	DeleteList(ctx context.Context, listID string) error

	AddItem(ctx context.Context, listID string, req models.AddItemRequest) (models.ItemResponse, error)
	UpdateItem(ctx context.Context, listID, ident string, req models.UpdateItemRequest) (models.ItemResponse, error)
	RemoveItem(ctx context.Context, listID, ident string) (models.ListView, error)
}

package store

import (
	"context"

	"github.com/MKhiriev/help-me-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// IdentityRepository runs the identity and user queries against the
// relational store. It does no caching.
type IdentityRepository interface {
	// FindUserIDByIdentity returns the user linked to naturalKey, or
	// ErrIdentityNotFound. Two matching rows yield ErrInvariantViolation.
	FindUserIDByIdentity(ctx context.Context, provider models.Provider, naturalKey string) (string, error)
	// LinkIdentity inserts identity. A unique violation yields
	// ErrDuplicateIdentity.
	LinkIdentity(ctx context.Context, identity models.ExternalIdentity) error
	// FindRoleIDByName returns the id of a seeded role, or ErrRoleNotFound.
	FindRoleIDByName(ctx context.Context, roleName string) (string, error)
	CreateUser(ctx context.Context, user models.User) error
	// FindUser returns the user with its role name, or ErrUserNotFound.
	FindUser(ctx context.Context, userID string) (models.User, error)
}

// ListRepository runs the list revision queries against the relational
// store. It does no caching.
type ListRepository interface {
	// InsertRevision appends rev. When rev has a parent that already has a
	// child the insert fails with ErrRevisionConflict.
	InsertRevision(ctx context.Context, rev models.ListRevision) error
	// LatestRevision returns the newest revision of listID, or
	// ErrListNotFound.
	LatestRevision(ctx context.Context, listID string) (models.ListRevision, error)
	// LatestRevisionsByUser returns the latest revision of every list userID
	// authored a revision of, newest first.
	LatestRevisionsByUser(ctx context.Context, userID string) ([]models.ListRevision, error)
	// EarliestRevisionAuthor returns the author of the oldest revision of
	// listID (its owner), or ErrListNotFound.
	EarliestRevisionAuthor(ctx context.Context, listID string) (string, error)
	// Revisions returns every revision of listID, newest first.
	Revisions(ctx context.Context, listID string) ([]models.ListRevision, error)
	// DeleteList removes every revision of listID and returns how many rows
	// were deleted.
	DeleteList(ctx context.Context, listID string) (int64, error)
}

// IdentityStorage is the cached identity store used by the services.
type IdentityStorage interface {
	// Resolve maps a provider-scoped natural key to a user id, or
	// ErrIdentityNotFound.
	Resolve(ctx context.Context, provider models.Provider, naturalKey string) (string, error)
	// Link binds identity to identity.UserID.
	Link(ctx context.Context, identity models.ExternalIdentity) error
	// CreateUser creates a user with the named role.
	CreateUser(ctx context.Context, roleName string) (models.User, error)
	FindUser(ctx context.Context, userID string) (models.User, error)
	// VerifyRoles fails with ErrInvariantViolation unless every role in
	// roleNames is seeded.
	VerifyRoles(ctx context.Context, roleNames ...string) error
}

// ListStorage is the cached revisioned list store used by the services.
type ListStorage interface {
	// CreateList stores the first revision of a new list.
	CreateList(ctx context.Context, authorID, contents string) (models.ListRevision, error)
	// UpdateList appends a revision to listID. An empty basedOn writes
	// unconditionally; otherwise the write fails with ErrRevisionConflict
	// unless basedOn is still the latest revision.
	UpdateList(ctx context.Context, listID, authorID, contents, basedOn string) (models.ListRevision, error)
	ReadLatest(ctx context.Context, listID string) (models.ListRevision, error)
	ListLatestByUser(ctx context.Context, userID string) ([]models.ListRevision, error)
	EarliestRevisionAuthor(ctx context.Context, listID string) (string, error)
	// DeleteList removes listID when requesterID owns it.
	DeleteList(ctx context.Context, listID, requesterID string) error
	History(ctx context.Context, listID string) ([]models.ListRevision, error)
}

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

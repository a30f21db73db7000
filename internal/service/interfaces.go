package service

import (
	"context"

	"github.com/MKhiriev/help-me-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ListServiceWrapper,IdentityServiceWrapper

// ListService is the list use-case layer. List ids arrive and leave in their
// external (encoded) form; user ids are canonical.
type ListService interface {
	CreateList(ctx context.Context, userID string, req models.CreateListRequest) (*models.List, error)
	GetList(ctx context.Context, listID string) (*models.List, error)
	GetUserLists(ctx context.Context, userID string) ([]*models.List, error)
	ReplaceContents(ctx context.Context, userID, listID string, req models.ReplaceListRequest) (*models.List, error)
	AddItem(ctx context.Context, userID, listID string, req models.AddItemRequest) (*models.List, models.ListItem, error)
	UpdateItem(ctx context.Context, userID, listID, ident string, req models.UpdateItemRequest) (*models.List, models.ListItem, error)
	RemoveItem(ctx context.Context, userID, listID, ident string) (*models.List, error)
	DeleteList(ctx context.Context, userID, listID string) error
	History(ctx context.Context, listID string) ([]*models.List, error)
}

// IdentityService maps external identities and API keys to users.
type IdentityService interface {
	// Authenticate resolves identity to its user, provisioning a new user on
	// first sight.
	Authenticate(ctx context.Context, identity models.ExternalIdentity) (models.User, error)
	// RegisterAPIKey creates a user together with a new secret key.
	RegisterAPIKey(ctx context.Context) (models.User, string, error)
	LoginAPIKey(ctx context.Context, req models.APIKeyLoginRequest) (models.User, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ListServiceWrapper defines middleware composition for ListService.
// Implementations wrap an existing ListService to add behavior such as
// validating.
type ListServiceWrapper interface {
	Wrap(ListService) ListService
}

// IdentityServiceWrapper is the IdentityService counterpart of
// ListServiceWrapper.
type IdentityServiceWrapper interface {
	Wrap(IdentityService) IdentityService
}

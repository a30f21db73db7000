package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/help-me-shop/internal/validators"
	"github.com/MKhiriev/help-me-shop/models"
)

// ListValidationService validates list requests before handing them to the
// wrapped ListService. Reads pass straight through.
type ListValidationService struct {
	inner     ListService
	validator validators.Validator
}

func NewListValidationService() ListServiceWrapper {
	return &ListValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ListValidationService) CreateList(ctx context.Context, userID string, req models.CreateListRequest) (*models.List, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error validating new list: %w", err)
	}

	return v.inner.CreateList(ctx, userID, req)
}

func (v *ListValidationService) GetList(ctx context.Context, listID string) (*models.List, error) {
	return v.inner.GetList(ctx, listID)
}

func (v *ListValidationService) GetUserLists(ctx context.Context, userID string) ([]*models.List, error) {
	return v.inner.GetUserLists(ctx, userID)
}

func (v *ListValidationService) ReplaceContents(ctx context.Context, userID, listID string, req models.ReplaceListRequest) (*models.List, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error validating list contents: %w", err)
	}

	return v.inner.ReplaceContents(ctx, userID, listID, req)
}

func (v *ListValidationService) AddItem(ctx context.Context, userID, listID string, req models.AddItemRequest) (*models.List, models.ListItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, models.ListItem{}, fmt.Errorf("error validating new item: %w", err)
	}

	return v.inner.AddItem(ctx, userID, listID, req)
}

func (v *ListValidationService) UpdateItem(ctx context.Context, userID, listID, ident string, req models.UpdateItemRequest) (*models.List, models.ListItem, error) {
	if ident == "" {
		return nil, models.ListItem{}, validators.ErrEmptyIdent
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, models.ListItem{}, fmt.Errorf("error validating item update: %w", err)
	}

	return v.inner.UpdateItem(ctx, userID, listID, ident, req)
}

func (v *ListValidationService) RemoveItem(ctx context.Context, userID, listID, ident string) (*models.List, error) {
	if ident == "" {
		return nil, validators.ErrEmptyIdent
	}

	return v.inner.RemoveItem(ctx, userID, listID, ident)
}

func (v *ListValidationService) DeleteList(ctx context.Context, userID, listID string) error {
	return v.inner.DeleteList(ctx, userID, listID)
}

func (v *ListValidationService) History(ctx context.Context, listID string) ([]*models.List, error) {
	return v.inner.History(ctx, listID)
}

func (v *ListValidationService) Wrap(wrapped ListService) ListService {
	v.inner = wrapped
	return v
}

// IdentityValidationService validates identities and login requests before
// handing them to the wrapped IdentityService.
type IdentityValidationService struct {
	inner     IdentityService
	validator validators.Validator
}

func NewIdentityValidationService() IdentityServiceWrapper {
	return &IdentityValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *IdentityValidationService) Authenticate(ctx context.Context, identity models.ExternalIdentity) (models.User, error) {
	if err := v.validator.Validate(ctx, identity); err != nil {
		return models.User{}, fmt.Errorf("error validating identity: %w", err)
	}

	return v.inner.Authenticate(ctx, identity)
}

func (v *IdentityValidationService) RegisterAPIKey(ctx context.Context) (models.User, string, error) {
	return v.inner.RegisterAPIKey(ctx)
}

func (v *IdentityValidationService) LoginAPIKey(ctx context.Context, req models.APIKeyLoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating login: %w", err)
	}

	return v.inner.LoginAPIKey(ctx, req)
}

func (v *IdentityValidationService) Wrap(wrapped IdentityService) IdentityService {
	v.inner = wrapped
	return v
}

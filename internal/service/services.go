package service

import (
	"fmt"

	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/store"
)

type Services struct {
	AuthService     AuthService
	IdentityService IdentityService
	ListService     ListService
	AppInfoService  AppInfoService
}

// NewServices builds the service layer over storages. List and identity
// services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	lists := NewListValidationService().Wrap(
		NewListService(storages.ListStorage, logger),
	)
	identities := NewIdentityValidationService().Wrap(
		NewIdentityService(storages.IdentityStorage, cfg.App.DefaultRole, logger),
	)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		IdentityService: identities,
		ListService:     lists,
		AppInfoService:  appInfo,
	}, nil
}

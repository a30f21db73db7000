package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/store"
	"github.com/MKhiriev/help-me-shop/models"
)

// secretKeyBytes is the entropy of a generated API secret key.
const secretKeyBytes = 32

type identityService struct {
	identities  store.IdentityStorage
	defaultRole string

	logger *logger.Logger
}

func NewIdentityService(identities store.IdentityStorage, defaultRole string, logger *logger.Logger) IdentityService {
	if defaultRole == "" {
		defaultRole = models.RoleRegular
	}
	return &identityService{
		identities:  identities,
		defaultRole: defaultRole,
		logger:      logger,
	}
}

// Authenticate returns the user linked to identity. An identity seen for the
// first time gets a new user with the default role.
//
// Two first logins of the same identity may race. The loser's link fails with
// store.ErrDuplicateIdentity and it resolves the winner's user instead; the
// user it created stays without an identity.
func (s *identityService) Authenticate(ctx context.Context, identity models.ExternalIdentity) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := s.identities.Resolve(ctx, identity.Provider, identity.NaturalKey)
	if err == nil {
		return s.identities.FindUser(ctx, userID)
	}
	if !errors.Is(err, store.ErrIdentityNotFound) {
		return models.User{}, err
	}

	user, err := s.provision(ctx, identity)
	if errors.Is(err, store.ErrDuplicateIdentity) {
		log.Warn().
			Str("func", "identityService.Authenticate").
			Str("provider", identity.Provider.String()).
			Msg("identity was linked concurrently, resolving again")

		userID, err = s.identities.Resolve(ctx, identity.Provider, identity.NaturalKey)
		if err != nil {
			return models.User{}, err
		}
		return s.identities.FindUser(ctx, userID)
	}
	if err != nil {
		return models.User{}, err
	}

	log.Info().
		Str("func", "identityService.Authenticate").
		Str("provider", identity.Provider.String()).
		Str("user_id", user.UserID).
		Msg("new user provisioned")

	return user, nil
}

// RegisterAPIKey creates a user identified by a new random secret key and
// returns both. The key is only ever shown here.
func (s *identityService) RegisterAPIKey(ctx context.Context) (models.User, string, error) {
	secret, err := newSecretKey()
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.provision(ctx, models.ExternalIdentity{
		Provider:   models.ProviderAPI,
		NaturalKey: secret,
	})
	if err != nil {
		return models.User{}, "", err
	}

	logger.FromContext(ctx).Info().
		Str("func", "identityService.RegisterAPIKey").
		Str("user_id", user.UserID).
		Msg("api key user registered")

	return user, secret, nil
}

// LoginAPIKey returns the user owning req.SecretKey, or ErrInvalidSecretKey.
func (s *identityService) LoginAPIKey(ctx context.Context, req models.APIKeyLoginRequest) (models.User, error) {
	userID, err := s.identities.Resolve(ctx, models.ProviderAPI, req.SecretKey)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.User{}, ErrInvalidSecretKey
	}
	if err != nil {
		return models.User{}, err
	}

	return s.identities.FindUser(ctx, userID)
}

func (s *identityService) provision(ctx context.Context, identity models.ExternalIdentity) (models.User, error) {
	user, err := s.identities.CreateUser(ctx, s.defaultRole)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	identity.UserID = user.UserID
	if err = s.identities.Link(ctx, identity); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func newSecretKey() (string, error) {
	b := make([]byte, secretKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating secret key: %w", err)
	}
	return hex.EncodeToString(b), nil
}

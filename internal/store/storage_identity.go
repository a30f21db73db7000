package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/help-me-shop/internal/cache"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
)

// Query names of the cached identity reads.
const (
	queryIdentityPrefix = "identity."
	queryRoleID         = "role.id"
	queryUser           = "user.by_id"
)

// resolvedIdentity is the cached outcome of an identity lookup. Not-found is
// cached too.
type resolvedIdentity struct {
	UserID string
	Found  bool
}

// identityStorage is the default implementation of [IdentityStorage]: an
// [IdentityRepository] behind the read-through cache.
type identityStorage struct {
	repository IdentityRepository
	cache      *cache.Cache
	ids        IDGenerator
	logger     *logger.Logger
}

// NewIdentityStorage constructs an [IdentityStorage] over repository. c may
// be nil, which disables caching.
func NewIdentityStorage(repository IdentityRepository, c *cache.Cache, ids IDGenerator, logger *logger.Logger) IdentityStorage {
	logger.Debug().Msg("creating identity storage")
	return &identityStorage{
		repository: repository,
		cache:      c,
		ids:        ids,
		logger:     logger,
	}
}

// Resolve returns the user linked to naturalKey for provider, or
// [ErrIdentityNotFound].
func (s *identityStorage) Resolve(ctx context.Context, provider models.Provider, naturalKey string) (string, error) {
	q := cache.NewQuery(queryIdentityPrefix+provider.String(), naturalKey)

	resolved, err := cache.Fetch(ctx, s.cache, q, func(ctx context.Context) (resolvedIdentity, error) {
		userID, err := s.repository.FindUserIDByIdentity(ctx, provider, naturalKey)
		if errors.Is(err, ErrIdentityNotFound) {
			return resolvedIdentity{}, nil
		}
		if err != nil {
			return resolvedIdentity{}, err
		}
		return resolvedIdentity{UserID: userID, Found: true}, nil
	})
	if err != nil {
		return "", err
	}
	if !resolved.Found {
		return "", ErrIdentityNotFound
	}

	return resolved.UserID, nil
}

// Link stores identity and drops cached lookups of its natural key and its
// user.
func (s *identityStorage) Link(ctx context.Context, identity models.ExternalIdentity) error {
	if err := s.repository.LinkIdentity(ctx, identity); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, identity.NaturalKey, identity.UserID)
	return nil
}

// CreateUser creates a user with the role named roleName. A role that is not
// seeded is an [ErrInvariantViolation].
func (s *identityStorage) CreateUser(ctx context.Context, roleName string) (models.User, error) {
	log := logger.FromContext(ctx)

	roleID, err := s.roleID(ctx, roleName)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		UserID:   s.ids.Generate(),
		RoleID:   roleID,
		RoleName: roleName,
	}
	if err = s.repository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "identityStorage.CreateUser").Msg("failed to create user")
		return models.User{}, err
	}

	return user, nil
}

// FindUser returns the user with its role. Users are immutable, so the
// result is cached.
func (s *identityStorage) FindUser(ctx context.Context, userID string) (models.User, error) {
	user, err := cache.Fetch(ctx, s.cache, cache.NewQuery(queryUser, userID), func(ctx context.Context) (models.User, error) {
		return s.repository.FindUser(ctx, userID)
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// VerifyRoles checks that every role in roleNames is seeded.
func (s *identityStorage) VerifyRoles(ctx context.Context, roleNames ...string) error {
	for _, name := range roleNames {
		if _, err := s.roleID(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

func (s *identityStorage) roleID(ctx context.Context, roleName string) (string, error) {
	log := logger.FromContext(ctx)

	roleID, err := cache.Fetch(ctx, s.cache, cache.NewQuery(queryRoleID, roleName), func(ctx context.Context) (string, error) {
		return s.repository.FindRoleIDByName(ctx, roleName)
	})
	if errors.Is(err, ErrRoleNotFound) {
		log.Error().Str("func", "identityStorage.roleID").Str("role", roleName).Msg("role is not seeded")
		return "", fmt.Errorf("%w: role %q is not seeded", ErrInvariantViolation, roleName)
	}
	if err != nil {
		return "", err
	}

	return roleID, nil
}

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentityStorage(t *testing.T, repo *fakeIdentityRepository) IdentityStorage {
	t.Helper()
	return NewIdentityStorage(repo, newTestCache(t), &sequentialIDs{}, logger.Nop())
}

func TestIdentityStorage_Resolve_CachesNotFoundUntilLink(t *testing.T) {
	// Arrange
	linked := map[string]string{}
	repo := &fakeIdentityRepository{
		FindUserIDByIdentityFunc: func(_ context.Context, _ models.Provider, naturalKey string) (string, error) {
			userID, ok := linked[naturalKey]
			if !ok {
				return "", ErrIdentityNotFound
			}
			return userID, nil
		},
		LinkIdentityFunc: func(_ context.Context, identity models.ExternalIdentity) error {
			linked[identity.NaturalKey] = identity.UserID
			return nil
		},
	}
	s := newTestIdentityStorage(t, repo)
	ctx := context.Background()

	// Act
	_, err1 := s.Resolve(ctx, models.ProviderAPI, "secret")
	_, err2 := s.Resolve(ctx, models.ProviderAPI, "secret")
	require.NoError(t, s.Link(ctx, models.ExternalIdentity{Provider: models.ProviderAPI, NaturalKey: "secret", UserID: testOwnerID}))
	userID, err3 := s.Resolve(ctx, models.ProviderAPI, "secret")

	// Assert
	assert.ErrorIs(t, err1, ErrIdentityNotFound)
	assert.ErrorIs(t, err2, ErrIdentityNotFound)
	require.NoError(t, err3)
	assert.Equal(t, testOwnerID, userID)
	assert.Equal(t, 2, repo.calls["FindUserIDByIdentity"])
}

func TestIdentityStorage_Resolve_ProvidersAreSeparate(t *testing.T) {
	repo := &fakeIdentityRepository{
		FindUserIDByIdentityFunc: func(_ context.Context, provider models.Provider, _ string) (string, error) {
			if provider == models.ProviderGoogle {
				return testOwnerID, nil
			}
			return "", ErrIdentityNotFound
		},
	}
	s := newTestIdentityStorage(t, repo)
	ctx := context.Background()

	userID, err := s.Resolve(ctx, models.ProviderGoogle, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, testOwnerID, userID)

	_, err = s.Resolve(ctx, models.ProviderBrowserID, "alice@example.com")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestIdentityStorage_Resolve_RepositoryError(t *testing.T) {
	repo := &fakeIdentityRepository{
		FindUserIDByIdentityFunc: func(context.Context, models.Provider, string) (string, error) {
			return "", ErrInvariantViolation
		},
	}
	s := newTestIdentityStorage(t, repo)

	_, err := s.Resolve(context.Background(), models.ProviderAPI, "secret")

	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestIdentityStorage_Link_Duplicate(t *testing.T) {
	repo := &fakeIdentityRepository{
		LinkIdentityFunc: func(context.Context, models.ExternalIdentity) error { return ErrDuplicateIdentity },
	}
	s := newTestIdentityStorage(t, repo)

	err := s.Link(context.Background(), models.ExternalIdentity{Provider: models.ProviderAPI, NaturalKey: "secret", UserID: testOwnerID})

	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestIdentityStorage_CreateUser(t *testing.T) {
	// Arrange
	var created models.User
	repo := &fakeIdentityRepository{
		FindRoleIDByNameFunc: func(_ context.Context, roleName string) (string, error) {
			if roleName == models.RoleRegular {
				return "00000000000000000000000000000002", nil
			}
			return "", ErrRoleNotFound
		},
		CreateUserFunc: func(_ context.Context, user models.User) error {
			created = user
			return nil
		},
	}
	s := newTestIdentityStorage(t, repo)
	ctx := context.Background()

	// Act
	user, err := s.CreateUser(ctx, models.RoleRegular)
	_, missingErr := s.CreateUser(ctx, "superuser")
	_, _ = s.CreateUser(ctx, models.RoleRegular)

	// Assert
	require.NoError(t, err)
	assert.Len(t, user.UserID, 32)
	assert.Equal(t, "00000000000000000000000000000002", user.RoleID)
	assert.Equal(t, models.RoleRegular, user.RoleName)
	assert.NotEqual(t, user.UserID, created.UserID)
	// the regular role id is served from the cache the second time
	assert.Equal(t, 2, repo.calls["FindRoleIDByName"])
	assert.ErrorIs(t, missingErr, ErrInvariantViolation)
}

func TestIdentityStorage_FindUser_Cached(t *testing.T) {
	repo := &fakeIdentityRepository{
		FindUserFunc: func(_ context.Context, userID string) (models.User, error) {
			return models.User{UserID: userID, RoleID: "00000000000000000000000000000001", RoleName: models.RoleAdmin}, nil
		},
	}
	s := newTestIdentityStorage(t, repo)
	ctx := context.Background()

	first, err := s.FindUser(ctx, testOwnerID)
	require.NoError(t, err)
	second, err := s.FindUser(ctx, testOwnerID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "00000000000000000000000000000001", second.RoleID)
	assert.Equal(t, 1, repo.calls["FindUser"])
}

func TestIdentityStorage_FindUser_NotFound(t *testing.T) {
	repo := &fakeIdentityRepository{
		FindUserFunc: func(context.Context, string) (models.User, error) { return models.User{}, ErrUserNotFound },
	}
	s := newTestIdentityStorage(t, repo)

	_, err := s.FindUser(context.Background(), testOwnerID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIdentityStorage_VerifyRoles(t *testing.T) {
	repo := &fakeIdentityRepository{
		FindRoleIDByNameFunc: func(_ context.Context, roleName string) (string, error) {
			switch roleName {
			case models.RoleAdmin:
				return "00000000000000000000000000000001", nil
			case models.RoleRegular:
				return "00000000000000000000000000000002", nil
			}
			return "", ErrRoleNotFound
		},
	}
	s := newTestIdentityStorage(t, repo)
	ctx := context.Background()

	assert.NoError(t, s.VerifyRoles(ctx, models.RoleAdmin, models.RoleRegular))
	assert.ErrorIs(t, s.VerifyRoles(ctx, models.RoleAdmin, "auditor"), ErrInvariantViolation)
}

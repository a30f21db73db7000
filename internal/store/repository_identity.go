package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
)

// identityRepository is the SQL implementation of [IdentityRepository]. It
// handles the provider identity tables, app_user and role.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type identityRepository struct {
	*DB
	logger *logger.Logger
}

// NewIdentityRepository constructs an [IdentityRepository] backed by the
// provided database connection and logger.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		DB:     db,
		logger: logger,
	}
}

// FindUserIDByIdentity looks up the user linked to naturalKey in the table of
// provider.
//
// Error handling:
//   - no row → [ErrIdentityNotFound].
//   - two rows → [ErrInvariantViolation]; the natural key is the primary key,
//     so this means the schema is not what the code expects.
//   - driver error → wrapped [ErrExecutingQuery].
func (r *identityRepository) FindUserIDByIdentity(ctx context.Context, provider models.Provider, naturalKey string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindIdentityQuery(r.builder, provider, naturalKey)
	if err != nil {
		log.Err(err).Str("func", "identityRepository.FindUserIDByIdentity").Str("provider", provider.String()).Msg("failed to create query")
		if errors.Is(err, ErrUnsupportedProvider) {
			return "", err
		}
		return "", buildError(err)
	}

	var userIDs []string
	err = r.withRetry(ctx, func(ctx context.Context) error {
		userIDs, err = queryStrings(ctx, r.DB.DB, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "identityRepository.FindUserIDByIdentity").Str("provider", provider.String()).Msg("failed to find identity")
		return "", err
	}

	switch len(userIDs) {
	case 0:
		return "", ErrIdentityNotFound
	case 1:
		return userIDs[0], nil
	default:
		log.Error().Str("func", "identityRepository.FindUserIDByIdentity").Str("provider", provider.String()).Msg("natural key matches more than one identity")
		return "", fmt.Errorf("%w: %s natural key matches %d rows", ErrInvariantViolation, provider, len(userIDs))
	}
}

// LinkIdentity inserts identity into its provider table.
//
// Error handling:
//   - unique or primary key violation → [ErrDuplicateIdentity].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *identityRepository) LinkIdentity(ctx context.Context, identity models.ExternalIdentity) error {
	log := logger.FromContext(ctx)

	query, args, err := buildLinkIdentityQuery(r.builder, identity)
	if err != nil {
		log.Err(err).Str("func", "identityRepository.LinkIdentity").Str("provider", identity.Provider.String()).Msg("failed to create query")
		if errors.Is(err, ErrUnsupportedProvider) {
			return err
		}
		return buildError(err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			log.Debug().Str("func", "identityRepository.LinkIdentity").Str("provider", identity.Provider.String()).Msg("identity already linked")
			return ErrDuplicateIdentity
		}
		log.Err(err).Str("func", "identityRepository.LinkIdentity").Str("provider", identity.Provider.String()).Msg("failed to link identity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindRoleIDByName returns the id of roleName, or [ErrRoleNotFound].
func (r *identityRepository) FindRoleIDByName(ctx context.Context, roleName string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRoleIDQuery(r.builder, roleName)
	if err != nil {
		log.Err(err).Str("func", "identityRepository.FindRoleIDByName").Msg("failed to create query")
		return "", buildError(err)
	}

	var roleIDs []string
	err = r.withRetry(ctx, func(ctx context.Context) error {
		roleIDs, err = queryStrings(ctx, r.DB.DB, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "identityRepository.FindRoleIDByName").Str("role", roleName).Msg("failed to find role")
		return "", err
	}

	switch len(roleIDs) {
	case 0:
		return "", ErrRoleNotFound
	case 1:
		return roleIDs[0], nil
	default:
		return "", fmt.Errorf("%w: role %q matches %d rows", ErrInvariantViolation, roleName, len(roleIDs))
	}
}

// CreateUser inserts user. The id and role id are chosen by the caller.
func (r *identityRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "identityRepository.CreateUser").Msg("failed to create query")
		return buildError(err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "identityRepository.CreateUser").Str("user_id", user.UserID).Msg("failed to create user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindUser loads a user together with its role name.
func (r *identityRepository) FindUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "identityRepository.FindUser").Msg("failed to create query")
		return models.User{}, buildError(err)
	}

	var user models.User
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.RoleID, &user.RoleName)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "identityRepository.FindUser").Str("user_id", userID).Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// queryStrings runs a single-column query and collects the values.
func queryStrings(ctx context.Context, db *sql.DB, query string, args []any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0, 1)
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

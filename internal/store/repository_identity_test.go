package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentityRepo(t *testing.T) (IdentityRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewIdentityRepository(db, logger.Nop()), mock
}

func TestFindUserIDByIdentity(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		want    string
		wantErr error
	}{
		{
			name: "linked",
			rows: sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"),
			want: "user-1",
		},
		{
			name:    "not linked",
			rows:    sqlmock.NewRows([]string{"user_id"}),
			wantErr: ErrIdentityNotFound,
		},
		{
			name:    "two rows",
			rows:    sqlmock.NewRows([]string{"user_id"}).AddRow("user-1").AddRow("user-2"),
			wantErr: ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestIdentityRepo(t)
			mock.ExpectQuery("SELECT user_id FROM auth_google WHERE email = \\$1 LIMIT 2").
				WithArgs("alice@example.com").
				WillReturnRows(tt.rows)

			got, err := repo.FindUserIDByIdentity(context.Background(), models.ProviderGoogle, "alice@example.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindUserIDByIdentity_UnsupportedProvider(t *testing.T) {
	repo, mock := newTestIdentityRepo(t)

	_, err := repo.FindUserIDByIdentity(context.Background(), models.Provider("myspace"), "x")

	assert.ErrorIs(t, err, ErrUnsupportedProvider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserIDByIdentity_DBError(t *testing.T) {
	repo, mock := newTestIdentityRepo(t)
	mock.ExpectQuery("SELECT user_id FROM auth_api").WillReturnError(errors.New("boom"))

	_, err := repo.FindUserIDByIdentity(context.Background(), models.ProviderAPI, "secret")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLinkIdentity(t *testing.T) {
	identity := models.ExternalIdentity{
		Provider:   models.ProviderAPI,
		NaturalKey: "secret",
		UserID:     "user-1",
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestIdentityRepo(t)
		mock.ExpectExec("INSERT INTO auth_api").
			WithArgs("secret", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.LinkIdentity(context.Background(), identity))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		repo, mock := newTestIdentityRepo(t)
		mock.ExpectExec("INSERT INTO auth_api").
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		err := repo.LinkIdentity(context.Background(), identity)

		assert.ErrorIs(t, err, ErrDuplicateIdentity)
	})

	t.Run("other error", func(t *testing.T) {
		repo, mock := newTestIdentityRepo(t)
		mock.ExpectExec("INSERT INTO auth_api").
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		err := repo.LinkIdentity(context.Background(), identity)

		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestFindRoleIDByName(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		repo, mock := newTestIdentityRepo(t)
		mock.ExpectQuery("SELECT role_id FROM role").
			WithArgs(models.RoleRegular).
			WillReturnRows(sqlmock.NewRows([]string{"role_id"}).AddRow("role-2"))

		roleID, err := repo.FindRoleIDByName(context.Background(), models.RoleRegular)

		require.NoError(t, err)
		assert.Equal(t, "role-2", roleID)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestIdentityRepo(t)
		mock.ExpectQuery("SELECT role_id FROM role").
			WillReturnRows(sqlmock.NewRows([]string{"role_id"}))

		_, err := repo.FindRoleIDByName(context.Background(), "superuser")

		assert.ErrorIs(t, err, ErrRoleNotFound)
	})
}

func TestCreateUser(t *testing.T) {
	repo, mock := newTestIdentityRepo(t)
	mock.ExpectExec("INSERT INTO app_user").
		WithArgs("user-1", "role-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), models.User{UserID: "user-1", RoleID: "role-2"})

	require.NoError(t, err)
}

func TestCreateUser_Error(t *testing.T) {
	repo, mock := newTestIdentityRepo(t)
	mock.ExpectExec("INSERT INTO app_user").WillReturnError(errors.New("boom"))

	err := repo.CreateUser(context.Background(), models.User{UserID: "user-1", RoleID: "role-2"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestIdentityRepo(t)
		mock.ExpectQuery("SELECT u.user_id, u.role_id, r.role_name FROM app_user u JOIN role r").
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id", "role_name"}).AddRow("user-1", "role-2", "regular"))

		user, err := repo.FindUser(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, models.User{UserID: "user-1", RoleID: "role-2", RoleName: "regular"}, user)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestIdentityRepo(t)
		mock.ExpectQuery("SELECT u.user_id").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUser(context.Background(), "user-1")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

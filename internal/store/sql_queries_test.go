package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/MKhiriev/help-me-shop/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

const revisionSelect = "SELECT revision_id, list_id, author_id, edited_at, contents, COALESCE(parent_revision_id, '') FROM list_revision"

func TestBuildLatestRevisionQuery(t *testing.T) {
	query, args, err := buildLatestRevisionQuery(pgBuilder, "list-1")

	require.NoError(t, err)
	assert.Equal(t, revisionSelect+" WHERE list_id = $1 ORDER BY edited_at DESC, revision_id DESC LIMIT 1", query)
	assert.Equal(t, []any{"list-1"}, args)
}

func TestBuildRevisionsQuery(t *testing.T) {
	query, args, err := buildRevisionsQuery(sqliteBuilder, "list-1")

	require.NoError(t, err)
	assert.Equal(t, revisionSelect+" WHERE list_id = ? ORDER BY edited_at DESC, revision_id DESC", query)
	assert.Equal(t, []any{"list-1"}, args)
}

func TestBuildEarliestAuthorQuery(t *testing.T) {
	query, args, err := buildEarliestAuthorQuery(pgBuilder, "list-1")

	require.NoError(t, err)
	assert.Equal(t, "SELECT author_id FROM list_revision WHERE list_id = $1 ORDER BY edited_at ASC, revision_id ASC LIMIT 1", query)
	assert.Equal(t, []any{"list-1"}, args)
}

func TestBuildLatestByUserQuery(t *testing.T) {
	query, args, err := buildLatestByUserQuery(pgBuilder, "user-1")

	require.NoError(t, err)
	assert.Contains(t, query, "FROM list_revision r WHERE r.list_id IN (SELECT a.list_id FROM list_revision a WHERE a.author_id = $1)")
	assert.Contains(t, query, "NOT EXISTS (SELECT 1 FROM list_revision n WHERE n.list_id = r.list_id")
	assert.Contains(t, query, "COALESCE(r.parent_revision_id, '')")
	assert.Contains(t, query, "ORDER BY r.edited_at DESC, r.revision_id DESC")
	assert.Equal(t, []any{"user-1"}, args)
}

func TestBuildInsertRevisionQuery(t *testing.T) {
	editedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		parent     string
		wantParent sql.NullString
	}{
		{name: "first revision", parent: "", wantParent: sql.NullString{}},
		{name: "based on parent", parent: "rev-0", wantParent: sql.NullString{String: "rev-0", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev := models.ListRevision{
				RevisionID:       "rev-1",
				ListID:           "list-1",
				AuthorID:         "user-1",
				EditedAt:         editedAt,
				Contents:         `{"title":"x"}`,
				ParentRevisionID: tt.parent,
			}

			query, args, err := buildInsertRevisionQuery(pgBuilder, rev)

			require.NoError(t, err)
			assert.Equal(t,
				"INSERT INTO list_revision (revision_id,list_id,author_id,edited_at,contents,parent_revision_id) VALUES ($1,$2,$3,$4,$5,$6)",
				query)
			assert.Equal(t, []any{"rev-1", "list-1", "user-1", editedAt, `{"title":"x"}`, tt.wantParent}, args)
		})
	}
}

func TestBuildDeleteListQuery(t *testing.T) {
	query, args, err := buildDeleteListQuery(sqliteBuilder, "list-1")

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM list_revision WHERE list_id = ?", query)
	assert.Equal(t, []any{"list-1"}, args)
}

func TestBuildFindIdentityQuery(t *testing.T) {
	tests := []struct {
		provider  models.Provider
		wantQuery string
	}{
		{models.ProviderGoogle, "SELECT user_id FROM auth_google WHERE email = $1 LIMIT 2"},
		{models.ProviderFacebook, "SELECT user_id FROM auth_facebook WHERE id = $1 LIMIT 2"},
		{models.ProviderTwitter, "SELECT user_id FROM auth_twitter WHERE username = $1 LIMIT 2"},
		{models.ProviderBrowserID, "SELECT user_id FROM auth_browserid WHERE email = $1 LIMIT 2"},
		{models.ProviderAPI, "SELECT user_id FROM auth_api WHERE secret_key = $1 LIMIT 2"},
	}

	for _, tt := range tests {
		t.Run(tt.provider.String(), func(t *testing.T) {
			query, args, err := buildFindIdentityQuery(pgBuilder, tt.provider, "key")

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"key"}, args)
		})
	}
}

func TestBuildFindIdentityQuery_UnsupportedProvider(t *testing.T) {
	_, _, err := buildFindIdentityQuery(pgBuilder, models.Provider("myspace"), "key")

	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestBuildLinkIdentityQuery(t *testing.T) {
	identity := models.ExternalIdentity{
		Provider:   models.ProviderTwitter,
		NaturalKey: "alice",
		UserID:     "user-1",
		Profile:    map[string]string{"profile_image_url": "https://img", "bio": "ignored"},
	}

	query, args, err := buildLinkIdentityQuery(sqliteBuilder, identity)

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO auth_twitter (username,user_id,profile_image_url) VALUES (?,?,?)", query)
	assert.Equal(t, []any{"alice", "user-1", "https://img"}, args)
}

func TestBuildLinkIdentityQuery_MissingProfileStoredEmpty(t *testing.T) {
	identity := models.ExternalIdentity{
		Provider:   models.ProviderGoogle,
		NaturalKey: "alice@example.com",
		UserID:     "user-1",
	}

	query, args, err := buildLinkIdentityQuery(pgBuilder, identity)

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO auth_google (email,user_id,first_name,last_name,name,locale) VALUES ($1,$2,$3,$4,$5,$6)", query)
	assert.Equal(t, []any{"alice@example.com", "user-1", "", "", "", ""}, args)
}

func TestBuildUserAndRoleQueries(t *testing.T) {
	query, args, err := buildFindRoleIDQuery(pgBuilder, models.RoleRegular)
	require.NoError(t, err)
	assert.Equal(t, "SELECT role_id FROM role WHERE role_name = $1 LIMIT 2", query)
	assert.Equal(t, []any{models.RoleRegular}, args)

	query, args, err = buildCreateUserQuery(pgBuilder, models.User{UserID: "user-1", RoleID: "role-1"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO app_user (user_id,role_id) VALUES ($1,$2)", query)
	assert.Equal(t, []any{"user-1", "role-1"}, args)

	query, args, err = buildFindUserQuery(pgBuilder, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT u.user_id, u.role_id, r.role_name FROM app_user u JOIN role r ON r.role_id = u.role_id WHERE u.user_id = $1", query)
	assert.Equal(t, []any{"user-1"}, args)
}

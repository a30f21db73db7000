package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/cache"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// fakeListRepository is a func-field ListRepository; unset funcs panic so a
// test fails loudly on an unexpected call. calls counts every invocation.
type fakeListRepository struct {
	InsertRevisionFunc         func(ctx context.Context, rev models.ListRevision) error
	LatestRevisionFunc         func(ctx context.Context, listID string) (models.ListRevision, error)
	LatestRevisionsByUserFunc  func(ctx context.Context, userID string) ([]models.ListRevision, error)
	EarliestRevisionAuthorFunc func(ctx context.Context, listID string) (string, error)
	RevisionsFunc              func(ctx context.Context, listID string) ([]models.ListRevision, error)
	DeleteListFunc             func(ctx context.Context, listID string) (int64, error)

	calls map[string]int
}

func (f *fakeListRepository) count(name string) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeListRepository) InsertRevision(ctx context.Context, rev models.ListRevision) error {
	f.count("InsertRevision")
	return f.InsertRevisionFunc(ctx, rev)
}

func (f *fakeListRepository) LatestRevision(ctx context.Context, listID string) (models.ListRevision, error) {
	f.count("LatestRevision")
	return f.LatestRevisionFunc(ctx, listID)
}

func (f *fakeListRepository) LatestRevisionsByUser(ctx context.Context, userID string) ([]models.ListRevision, error) {
	f.count("LatestRevisionsByUser")
	return f.LatestRevisionsByUserFunc(ctx, userID)
}

func (f *fakeListRepository) EarliestRevisionAuthor(ctx context.Context, listID string) (string, error) {
	f.count("EarliestRevisionAuthor")
	return f.EarliestRevisionAuthorFunc(ctx, listID)
}

func (f *fakeListRepository) Revisions(ctx context.Context, listID string) ([]models.ListRevision, error) {
	f.count("Revisions")
	return f.RevisionsFunc(ctx, listID)
}

func (f *fakeListRepository) DeleteList(ctx context.Context, listID string) (int64, error) {
	f.count("DeleteList")
	return f.DeleteListFunc(ctx, listID)
}

type fakeIdentityRepository struct {
	FindUserIDByIdentityFunc func(ctx context.Context, provider models.Provider, naturalKey string) (string, error)
	LinkIdentityFunc         func(ctx context.Context, identity models.ExternalIdentity) error
	FindRoleIDByNameFunc     func(ctx context.Context, roleName string) (string, error)
	CreateUserFunc           func(ctx context.Context, user models.User) error
	FindUserFunc             func(ctx context.Context, userID string) (models.User, error)

	calls map[string]int
}

func (f *fakeIdentityRepository) count(name string) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeIdentityRepository) FindUserIDByIdentity(ctx context.Context, provider models.Provider, naturalKey string) (string, error) {
	f.count("FindUserIDByIdentity")
	return f.FindUserIDByIdentityFunc(ctx, provider, naturalKey)
}

func (f *fakeIdentityRepository) LinkIdentity(ctx context.Context, identity models.ExternalIdentity) error {
	f.count("LinkIdentity")
	return f.LinkIdentityFunc(ctx, identity)
}

func (f *fakeIdentityRepository) FindRoleIDByName(ctx context.Context, roleName string) (string, error) {
	f.count("FindRoleIDByName")
	return f.FindRoleIDByNameFunc(ctx, roleName)
}

func (f *fakeIdentityRepository) CreateUser(ctx context.Context, user models.User) error {
	f.count("CreateUser")
	return f.CreateUserFunc(ctx, user)
}

func (f *fakeIdentityRepository) FindUser(ctx context.Context, userID string) (models.User, error) {
	f.count("FindUser")
	return f.FindUserFunc(ctx, userID)
}

// sequentialIDs hands out predictable 32-char hex ids.
type sequentialIDs struct {
	next int
}

func (s *sequentialIDs) Generate() string {
	s.next++
	return fmt.Sprintf("0192f1a0000070008000%012x", s.next)
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(cache.NewRedisBackendFromClient(client), time.Hour, logger.Nop())
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

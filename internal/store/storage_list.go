// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/cache"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
)

// Query names of the cached list reads.
const (
	queryListLatest       = "list.latest"
	queryListOwner        = "list.owner"
	queryListLatestByUser = "list.latest_by_user"
	queryListHistory      = "list.history"
)

// listStorage is the default implementation of [ListStorage]: a
// [ListRepository] behind the read-through cache.
//
// Every mutation writes to the repository first and then invalidates every
// identifier it touched, so that no later read is served from an entry that
// predates the write.
type listStorage struct {
	repository ListRepository
	cache      *cache.Cache
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

// NewListStorage constructs a [ListStorage] over repository. c may be nil,
// which disables caching.
func NewListStorage(repository ListRepository, c *cache.Cache, ids IDGenerator, logger *logger.Logger) ListStorage {
	logger.Debug().Msg("creating list storage")
	return &listStorage{
		repository: repository,
		cache:      c,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

// CreateList stores the first revision of a new list authored by authorID.
func (s *listStorage) CreateList(ctx context.Context, authorID, contents string) (models.ListRevision, error) {
	rev := models.ListRevision{
		RevisionID: s.ids.Generate(),
		ListID:     s.ids.Generate(),
		AuthorID:   authorID,
		EditedAt:   s.timestamp(),
		Contents:   contents,
	}

	if err := s.repository.InsertRevision(ctx, rev); err != nil {
		return models.ListRevision{}, err
	}

	s.cache.Invalidate(ctx, authorID)
	return rev, nil
}

// UpdateList appends a revision to listID.
//
// With an empty basedOn the write is unconditional and does not check that
// the list exists. Otherwise basedOn must still be the latest revision: the
// latest revision is read from the database, bypassing the cache, and the
// new revision records basedOn as its parent, whose uniqueness rejects a
// concurrent second child. Both failures yield [ErrRevisionConflict] and drop
// the cached reads of listID, so a retry starts from the current revision; a
// list without revisions yields [ErrListNotFound].
func (s *listStorage) UpdateList(ctx context.Context, listID, authorID, contents, basedOn string) (models.ListRevision, error) {
	log := logger.FromContext(ctx)

	rev := models.ListRevision{
		RevisionID: s.ids.Generate(),
		ListID:     listID,
		AuthorID:   authorID,
		EditedAt:   s.timestamp(),
		Contents:   contents,
	}

	if basedOn != "" {
		latest, err := s.repository.LatestRevision(ctx, listID)
		if err != nil {
			return models.ListRevision{}, err
		}
		if latest.RevisionID != basedOn {
			log.Debug().
				Str("func", "listStorage.UpdateList").
				Str("list_id", listID).
				Str("based_on", basedOn).
				Str("latest", latest.RevisionID).
				Msg("stale revision")
			s.cache.Invalidate(ctx, listID)
			return models.ListRevision{}, ErrRevisionConflict
		}

		// keep the new revision ordered after its parent under clock skew
		if !rev.EditedAt.After(latest.EditedAt) {
			rev.EditedAt = latest.EditedAt.Add(time.Microsecond)
		}
		rev.ParentRevisionID = basedOn
	}

	if err := s.repository.InsertRevision(ctx, rev); err != nil {
		if errors.Is(err, ErrRevisionConflict) {
			s.cache.Invalidate(ctx, listID)
		}
		return models.ListRevision{}, err
	}

	s.cache.Invalidate(ctx, listID, authorID, rev.RevisionID)
	return rev, nil
}

// ReadLatest returns the latest revision of listID, or [ErrListNotFound].
func (s *listStorage) ReadLatest(ctx context.Context, listID string) (models.ListRevision, error) {
	return cache.Fetch(ctx, s.cache, cache.NewQuery(queryListLatest, listID), func(ctx context.Context) (models.ListRevision, error) {
		return s.repository.LatestRevision(ctx, listID)
	})
}

// ListLatestByUser returns the latest revision of every list userID has
// authored a revision of. The cached result is also indexed by each of those
// list ids, so a write to any of them by another user drops it.
func (s *listStorage) ListLatestByUser(ctx context.Context, userID string) ([]models.ListRevision, error) {
	return cache.FetchTagged(ctx, s.cache, cache.NewQuery(queryListLatestByUser, userID), listIDs,
		func(ctx context.Context) ([]models.ListRevision, error) {
			return s.repository.LatestRevisionsByUser(ctx, userID)
		})
}

// EarliestRevisionAuthor returns the owner of listID, or [ErrListNotFound].
func (s *listStorage) EarliestRevisionAuthor(ctx context.Context, listID string) (string, error) {
	return cache.Fetch(ctx, s.cache, cache.NewQuery(queryListOwner, listID), func(ctx context.Context) (string, error) {
		return s.repository.EarliestRevisionAuthor(ctx, listID)
	})
}

// DeleteList removes every revision of listID if requesterID owns the list.
//
// Error handling:
//   - no owner → [ErrListNotFound].
//   - requester is not the owner → [ErrForbidden], nothing is deleted.
//   - nothing deleted → [ErrListNotFound] (the list vanished in between).
func (s *listStorage) DeleteList(ctx context.Context, listID, requesterID string) error {
	log := logger.FromContext(ctx)

	owner, err := s.EarliestRevisionAuthor(ctx, listID)
	if err != nil {
		return err
	}
	if owner != requesterID {
		log.Warn().
			Str("func", "listStorage.DeleteList").
			Str("list_id", listID).
			Str("requester_id", requesterID).
			Msg("delete attempted by non-owner")
		return ErrForbidden
	}

	deleted, err := s.repository.DeleteList(ctx, listID)
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, listID, requesterID)

	if deleted == 0 {
		log.Warn().Str("func", "listStorage.DeleteList").Str("list_id", listID).Msg("no revisions were deleted")
		return ErrListNotFound
	}

	return nil
}

// History returns every revision of listID, newest first. An unknown list
// yields [ErrListNotFound].
func (s *listStorage) History(ctx context.Context, listID string) ([]models.ListRevision, error) {
	revisions, err := cache.Fetch(ctx, s.cache, cache.NewQuery(queryListHistory, listID), func(ctx context.Context) ([]models.ListRevision, error) {
		return s.repository.Revisions(ctx, listID)
	})
	if err != nil {
		return nil, err
	}
	if len(revisions) == 0 {
		return nil, ErrListNotFound
	}

	return revisions, nil
}

// timestamp is the current time in UTC at the precision both backends
// store.
func (s *listStorage) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func listIDs(revisions []models.ListRevision) []string {
	ids := make([]string, 0, len(revisions))
	for _, rev := range revisions {
		ids = append(ids, rev.ListID)
	}
	return ids
}

// IsNotFound reports whether err means the requested entity does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrListNotFound) ||
		errors.Is(err, ErrIdentityNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/store"
	"github.com/MKhiriev/help-me-shop/internal/utils"
	"github.com/MKhiriev/help-me-shop/models"
)

// listService implements ListService over the cached list storage.
//
// Every item mutation is a read-modify-write of the latest revision that is
// stored as a conditional update based on the revision it read, so a
// concurrent writer makes it fail with store.ErrRevisionConflict instead of
// silently losing one of the edits.
type listService struct {
	lists store.ListStorage

	logger *logger.Logger
}

func NewListService(lists store.ListStorage, logger *logger.Logger) ListService {
	return &listService{
		lists:  lists,
		logger: logger,
	}
}

// CreateList stores a new empty list titled req.Title (models.DefaultListTitle
// when empty) owned by userID.
func (s *listService) CreateList(ctx context.Context, userID string, req models.CreateListRequest) (*models.List, error) {
	contents, err := models.NewList(req.Title).Contents()
	if err != nil {
		return nil, err
	}

	rev, err := s.lists.CreateList(ctx, userID, contents)
	if err != nil {
		return nil, fmt.Errorf("error creating list: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "listService.CreateList").
		Str("list_id", rev.ListID).
		Str("user_id", userID).
		Msg("list created")

	return parseStored(rev)
}

// GetList returns the latest state of a list. Lists are readable by anyone
// who knows the id.
func (s *listService) GetList(ctx context.Context, listID string) (*models.List, error) {
	id, err := decodeListID(listID)
	if err != nil {
		return nil, err
	}

	rev, err := s.lists.ReadLatest(ctx, id)
	if err != nil {
		return nil, err
	}

	return parseStored(rev)
}

// GetUserLists returns the latest state of every list userID has written,
// newest first. Lists whose latest revision no longer parses are skipped.
func (s *listService) GetUserLists(ctx context.Context, userID string) ([]*models.List, error) {
	log := logger.FromContext(ctx)

	revisions, err := s.lists.ListLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lists := make([]*models.List, 0, len(revisions))
	for _, rev := range revisions {
		l, err := parseStored(rev)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "listService.GetUserLists").
				Str("list_id", rev.ListID).
				Str("revision_id", rev.RevisionID).
				Msg("skipping unreadable list")
			continue
		}
		lists = append(lists, l)
	}

	return lists, nil
}

// ReplaceContents stores req.Contents as the new state of the list.
//
// When req.RevisionID is set the write only succeeds if that revision is
// still the latest one. Without it the list must exist and the write wins
// over any concurrent one.
func (s *listService) ReplaceContents(ctx context.Context, userID, listID string, req models.ReplaceListRequest) (*models.List, error) {
	id, err := decodeListID(listID)
	if err != nil {
		return nil, err
	}

	var basedOn string
	if req.RevisionID != "" {
		if basedOn, err = utils.DecodeID(req.RevisionID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRevisionID, err)
		}
	} else if _, err = s.lists.ReadLatest(ctx, id); err != nil {
		return nil, err
	}

	// parse and re-encode so that only well-formed contents are stored
	l, err := models.ParseList("", id, string(req.Contents), time.Time{})
	if err != nil {
		return nil, err
	}
	contents, err := l.Contents()
	if err != nil {
		return nil, err
	}

	rev, err := s.lists.UpdateList(ctx, id, userID, contents, basedOn)
	if err != nil {
		return nil, err
	}

	return parseStored(rev)
}

// AddItem appends an item to the list.
func (s *listService) AddItem(ctx context.Context, userID, listID string, req models.AddItemRequest) (*models.List, models.ListItem, error) {
	var added models.ListItem
	l, err := s.mutate(ctx, userID, listID, func(l *models.List) error {
		added = l.AddItem(req.Title, req.URL, req.Notes)
		return nil
	})
	if err != nil {
		return nil, models.ListItem{}, err
	}

	return l, added, nil
}

// UpdateItem patches the item with the given ident.
func (s *listService) UpdateItem(ctx context.Context, userID, listID, ident string, req models.UpdateItemRequest) (*models.List, models.ListItem, error) {
	var updated models.ListItem
	l, err := s.mutate(ctx, userID, listID, func(l *models.List) error {
		var err error
		updated, err = l.UpdateItem(ident, req.ItemPatch)
		return err
	})
	if err != nil {
		return nil, models.ListItem{}, err
	}

	return l, updated, nil
}

// RemoveItem deletes the item with the given ident.
func (s *listService) RemoveItem(ctx context.Context, userID, listID, ident string) (*models.List, error) {
	return s.mutate(ctx, userID, listID, func(l *models.List) error {
		return l.RemoveItem(ident)
	})
}

// DeleteList removes the list. Only its owner, the author of its first
// revision, may do so.
func (s *listService) DeleteList(ctx context.Context, userID, listID string) error {
	id, err := decodeListID(listID)
	if err != nil {
		return err
	}

	if err = s.lists.DeleteList(ctx, id, userID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "listService.DeleteList").
		Str("list_id", id).
		Str("user_id", userID).
		Msg("list deleted")

	return nil
}

// History returns every revision of the list, newest first. Revisions whose
// contents no longer parse are returned with their identity only.
func (s *listService) History(ctx context.Context, listID string) ([]*models.List, error) {
	id, err := decodeListID(listID)
	if err != nil {
		return nil, err
	}

	revisions, err := s.lists.History(ctx, id)
	if err != nil {
		return nil, err
	}

	history := make([]*models.List, 0, len(revisions))
	for _, rev := range revisions {
		l, err := models.ParseRevision(rev)
		if err != nil {
			l = &models.List{
				RevisionID: rev.RevisionID,
				ListID:     rev.ListID,
				AuthorID:   rev.AuthorID,
				EditedAt:   rev.EditedAt,
			}
		}
		history = append(history, l)
	}

	return history, nil
}

// mutate applies change to the latest revision of listID and stores the
// result as a revision based on it.
func (s *listService) mutate(ctx context.Context, userID, listID string, change func(l *models.List) error) (*models.List, error) {
	id, err := decodeListID(listID)
	if err != nil {
		return nil, err
	}

	latest, err := s.lists.ReadLatest(ctx, id)
	if err != nil {
		return nil, err
	}

	l, err := parseStored(latest)
	if err != nil {
		return nil, err
	}
	if err = change(l); err != nil {
		return nil, err
	}

	contents, err := l.Contents()
	if err != nil {
		return nil, err
	}

	rev, err := s.lists.UpdateList(ctx, id, userID, contents, latest.RevisionID)
	if err != nil {
		return nil, err
	}

	return parseStored(rev)
}

func decodeListID(listID string) (string, error) {
	id, err := utils.DecodeID(listID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidListID, err)
	}
	return id, nil
}

// parseStored parses a revision read from the store. A failure means the
// stored data is bad, not the request.
func parseStored(rev models.ListRevision) (*models.List, error) {
	l, err := models.ParseRevision(rev)
	if err != nil {
		return nil, fmt.Errorf("%w: revision %s: %w", ErrCorruptList, rev.RevisionID, err)
	}
	return l, nil
}

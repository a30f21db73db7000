// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/models"
	sq "github.com/Masterminds/squirrel"
)

// listRepository is the SQL implementation of [ListRepository]. A list is
// the set of list_revision rows sharing a list_id; rows are only ever
// inserted, or deleted all together.
type listRepository struct {
	*DB
	logger *logger.Logger
}

// NewListRepository constructs a [ListRepository] backed by the provided
// database connection and logger.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		DB:     db,
		logger: logger,
	}
}

// InsertRevision appends rev. EditedAt is stored in UTC.
//
// Error handling:
//   - unique violation on a revision with a parent → [ErrRevisionConflict]
//     (another revision was already based on the same parent).
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *listRepository) InsertRevision(ctx context.Context, rev models.ListRevision) error {
	log := logger.FromContext(ctx)

	rev.EditedAt = rev.EditedAt.UTC()
	query, args, err := buildInsertRevisionQuery(r.builder, rev)
	if err != nil {
		log.Err(err).Str("func", "listRepository.InsertRevision").Msg("failed to create query")
		return buildError(err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if rev.ParentRevisionID != "" && r.isUniqueViolation(err) {
			log.Debug().
				Str("func", "listRepository.InsertRevision").
				Str("list_id", rev.ListID).
				Str("parent_revision_id", rev.ParentRevisionID).
				Msg("parent revision already has a child")
			return ErrRevisionConflict
		}
		log.Err(err).
			Str("func", "listRepository.InsertRevision").
			Str("list_id", rev.ListID).
			Msg("failed to insert list revision")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LatestRevision returns the revision with the greatest (edited_at,
// revision_id), or [ErrListNotFound].
func (r *listRepository) LatestRevision(ctx context.Context, listID string) (models.ListRevision, error) {
	revisions, err := r.selectRevisions(ctx, "listRepository.LatestRevision", listID, buildLatestRevisionQuery)
	if err != nil {
		return models.ListRevision{}, err
	}
	if len(revisions) == 0 {
		return models.ListRevision{}, ErrListNotFound
	}

	return revisions[0], nil
}

// LatestRevisionsByUser returns one revision per list the user has authored
// any revision of: that list's latest revision, by any author.
func (r *listRepository) LatestRevisionsByUser(ctx context.Context, userID string) ([]models.ListRevision, error) {
	return r.selectRevisions(ctx, "listRepository.LatestRevisionsByUser", userID, buildLatestByUserQuery)
}

// Revisions returns the full history of listID, newest first. An unknown
// list yields an empty slice.
func (r *listRepository) Revisions(ctx context.Context, listID string) ([]models.ListRevision, error) {
	return r.selectRevisions(ctx, "listRepository.Revisions", listID, buildRevisionsQuery)
}

// EarliestRevisionAuthor returns the author of the revision with the least
// (edited_at, revision_id), or [ErrListNotFound].
func (r *listRepository) EarliestRevisionAuthor(ctx context.Context, listID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEarliestAuthorQuery(r.builder, listID)
	if err != nil {
		log.Err(err).Str("func", "listRepository.EarliestRevisionAuthor").Msg("failed to create query")
		return "", buildError(err)
	}

	var authorID string
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&authorID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrListNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "listRepository.EarliestRevisionAuthor").Str("list_id", listID).Msg("failed to find list owner")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return authorID, nil
}

// DeleteList physically removes every revision of listID.
func (r *listRepository) DeleteList(ctx context.Context, listID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteListQuery(r.builder, listID)
	if err != nil {
		log.Err(err).Str("func", "listRepository.DeleteList").Msg("failed to create query")
		return 0, buildError(err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "listRepository.DeleteList").Str("list_id", listID).Msg("failed to delete list")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "listRepository.DeleteList").Str("list_id", listID).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

type revisionQueryBuilder func(b sq.StatementBuilderType, id string) (string, []any, error)

func (r *listRepository) selectRevisions(ctx context.Context, funcName, id string, build revisionQueryBuilder) ([]models.ListRevision, error) {
	log := logger.FromContext(ctx)

	query, args, err := build(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, buildError(err)
	}

	var revisions []models.ListRevision
	err = r.withRetry(ctx, func(ctx context.Context) error {
		revisions, err = r.queryRevisions(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Str("id", id).Msg("failed to select list revisions")
		return nil, err
	}

	return revisions, nil
}

func (r *listRepository) queryRevisions(ctx context.Context, query string, args []any) ([]models.ListRevision, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	revisions := make([]models.ListRevision, 0, 8)
	for rows.Next() {
		var rev models.ListRevision
		if err = rows.Scan(
			&rev.RevisionID,
			&rev.ListID,
			&rev.AuthorID,
			&rev.EditedAt,
			&rev.Contents,
			&rev.ParentRevisionID,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rev.EditedAt = rev.EditedAt.UTC()
		revisions = append(revisions, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return revisions, nil
}

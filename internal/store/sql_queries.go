// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/help-me-shop/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	tableListRevision = "list_revision"
	tableRole         = "role"
	tableUser         = "app_user"
)

// revisionColumns lists the columns scanRevision reads, in order, qualified
// by alias when it is not empty.
func revisionColumns(alias string) []string {
	p := ""
	if alias != "" {
		p = alias + "."
	}

	return []string{
		p + "revision_id",
		p + "list_id",
		p + "author_id",
		p + "edited_at",
		p + "contents",
		"COALESCE(" + p + "parent_revision_id, '')",
	}
}

// revisionOrder sorts newest first; revision_id breaks edited_at ties.
var revisionOrder = []string{"edited_at DESC", "revision_id DESC"}

func buildLatestRevisionQuery(b sq.StatementBuilderType, listID string) (string, []any, error) {
	return b.Select(revisionColumns("")...).
		From(tableListRevision).
		Where(sq.Eq{"list_id": listID}).
		OrderBy(revisionOrder...).
		Limit(1).
		ToSql()
}

func buildRevisionsQuery(b sq.StatementBuilderType, listID string) (string, []any, error) {
	return b.Select(revisionColumns("")...).
		From(tableListRevision).
		Where(sq.Eq{"list_id": listID}).
		OrderBy(revisionOrder...).
		ToSql()
}

func buildEarliestAuthorQuery(b sq.StatementBuilderType, listID string) (string, []any, error) {
	return b.Select("author_id").
		From(tableListRevision).
		Where(sq.Eq{"list_id": listID}).
		OrderBy("edited_at ASC", "revision_id ASC").
		Limit(1).
		ToSql()
}

// buildLatestByUserQuery selects, for every list userID ever wrote a revision
// of, that list's current latest revision (whoever wrote it).
func buildLatestByUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(revisionColumns("r")...).
		From(tableListRevision+" r").
		Where(sq.Expr("r.list_id IN (SELECT a.list_id FROM "+tableListRevision+" a WHERE a.author_id = ?)", userID)).
		Where("NOT EXISTS (SELECT 1 FROM " + tableListRevision + " n WHERE n.list_id = r.list_id" +
			" AND (n.edited_at > r.edited_at OR (n.edited_at = r.edited_at AND n.revision_id > r.revision_id)))").
		OrderBy("r.edited_at DESC", "r.revision_id DESC").
		ToSql()
}

func buildInsertRevisionQuery(b sq.StatementBuilderType, rev models.ListRevision) (string, []any, error) {
	return b.Insert(tableListRevision).
		Columns("revision_id", "list_id", "author_id", "edited_at", "contents", "parent_revision_id").
		Values(rev.RevisionID, rev.ListID, rev.AuthorID, rev.EditedAt, rev.Contents, nullString(rev.ParentRevisionID)).
		ToSql()
}

func buildDeleteListQuery(b sq.StatementBuilderType, listID string) (string, []any, error) {
	return b.Delete(tableListRevision).
		Where(sq.Eq{"list_id": listID}).
		ToSql()
}

// buildFindIdentityQuery fetches up to two rows so that a broken uniqueness
// guarantee is detected rather than hidden.
func buildFindIdentityQuery(b sq.StatementBuilderType, provider models.Provider, naturalKey string) (string, []any, error) {
	table, err := tableFor(provider)
	if err != nil {
		return "", nil, err
	}

	return b.Select("user_id").
		From(table.name).
		Where(sq.Eq{table.naturalKey: naturalKey}).
		Limit(2).
		ToSql()
}

// buildLinkIdentityQuery inserts the identity with every profile column of
// its provider; attributes missing from the profile are stored empty.
func buildLinkIdentityQuery(b sq.StatementBuilderType, identity models.ExternalIdentity) (string, []any, error) {
	table, err := tableFor(identity.Provider)
	if err != nil {
		return "", nil, err
	}

	columns := append([]string{table.naturalKey, "user_id"}, table.profile...)
	values := make([]any, 0, len(columns))
	values = append(values, identity.NaturalKey, identity.UserID)
	for _, col := range table.profile {
		values = append(values, identity.Profile[col])
	}

	return b.Insert(table.name).
		Columns(columns...).
		Values(values...).
		ToSql()
}

func buildFindRoleIDQuery(b sq.StatementBuilderType, roleName string) (string, []any, error) {
	return b.Select("role_id").
		From(tableRole).
		Where(sq.Eq{"role_name": roleName}).
		Limit(2).
		ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(tableUser).
		Columns("user_id", "role_id").
		Values(user.UserID, user.RoleID).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("u.user_id", "u.role_id", "r.role_name").
		From(tableUser + " u").
		Join(tableRole + " r ON r.role_id = u.role_id").
		Where(sq.Eq{"u.user_id": userID}).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func buildError(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

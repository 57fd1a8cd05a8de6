// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

const (
	getDrawing = `SELECT id, owner_id, title, description, is_pinned, is_public, is_archived, is_deleted, created_at, updated_at, deleted_at
		FROM drawings
		WHERE id = $1;`

	drawingExists = `SELECT EXISTS(SELECT 1 FROM drawings WHERE id = $1);`

	createDrawing = `INSERT INTO drawings (
			id,
			owner_id,
			title,
			description,
			is_pinned,
			is_public,
			is_archived,
			is_deleted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, owner_id, title, description, is_pinned, is_public, is_archived, is_deleted, created_at, updated_at, deleted_at;`

	createContent = `INSERT INTO drawing_contents (drawing_id, elements, app_state, files)
		VALUES ($1, $2, $3, $4);`

	getContent = `SELECT drawing_id, elements, app_state, files
		FROM drawing_contents
		WHERE drawing_id = $1;`

	replaceContent = `UPDATE drawing_contents
		SET elements = $2, app_state = $3, files = $4
		WHERE drawing_id = $1;`

	// touchDrawing implements the optimistic-lock check: the bump only lands
	// when updated_at has not moved since the caller read it.
	touchDrawing = `UPDATE drawings
		SET updated_at = NOW()
		WHERE id = $1 AND updated_at = $2
		RETURNING updated_at;`

	deleteDrawing = `DELETE FROM drawings
		WHERE id = $1
		RETURNING id;`
)

// drawingColumns is the column order shared by every drawings SELECT and the
// scanDrawing helper.
var drawingColumns = []string{
	"id",
	"owner_id",
	"title",
	"description",
	"is_pinned",
	"is_public",
	"is_archived",
	"is_deleted",
	"created_at",
	"updated_at",
	"deleted_at",
}

// psql builds PostgreSQL-flavoured ($1, $2, ...) queries.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// categoryConjunction translates a listing view into flag predicates matching
// [models.Drawing.InCategory]: trash is decided by is_deleted alone, every
// other view excludes trashed drawings.
func categoryConjunction(category models.Category) sq.And {
	switch category {
	case models.CategoryTrash:
		return sq.And{sq.Eq{"is_deleted": true}}
	case models.CategoryPinned:
		return sq.And{sq.Eq{"is_deleted": false}, sq.Eq{"is_pinned": true}}
	case models.CategoryPublic:
		return sq.And{sq.Eq{"is_deleted": false}, sq.Eq{"is_public": true}}
	case models.CategoryArchived:
		return sq.And{sq.Eq{"is_deleted": false}, sq.Eq{"is_archived": true}}
	default: // recent
		return sq.And{sq.Eq{"is_deleted": false}, sq.Eq{"is_archived": false}}
	}
}

// escapeLikePattern escapes the LIKE metacharacters in a raw search term so
// that user input matches literally.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// buildListDrawingsQuery builds the paginated listing SELECT for one owner:
// category flags, optional case-insensitive title search, newest update first.
func buildListDrawingsQuery(ownerID string, query models.ListQuery) (string, []any, error) {
	builder := psql.Select(drawingColumns...).
		From("drawings").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(categoryConjunction(query.Category))

	if term := strings.TrimSpace(query.Search); term != "" {
		builder = builder.Where(sq.ILike{"title": "%" + escapeLikePattern(term) + "%"})
	}

	offset := (query.Page - 1) * query.PageSize

	return builder.
		OrderBy("updated_at DESC").
		Limit(uint64(query.PageSize)).
		Offset(uint64(offset)).
		ToSql()
}

// buildCountDrawingsQuery builds the companion COUNT for the same filters,
// ignoring pagination.
func buildCountDrawingsQuery(ownerID string, query models.ListQuery) (string, []any, error) {
	builder := psql.Select("COUNT(*)").
		From("drawings").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(categoryConjunction(query.Category))

	if term := strings.TrimSpace(query.Search); term != "" {
		builder = builder.Where(sq.ILike{"title": "%" + escapeLikePattern(term) + "%"})
	}

	return builder.ToSql()
}

// buildUpdateMetadataQuery builds the dynamic UPDATE applying the non-nil
// fields of patch. Every patch bumps updated_at; toggling IsDeleted stamps or
// clears deleted_at. The caller guarantees the patch is not empty.
func buildUpdateMetadataQuery(drawingID string, patch models.MetadataPatch, now time.Time) (string, []any, error) {
	builder := psql.Update("drawings").
		Set("updated_at", now)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.IsPinned != nil {
		builder = builder.Set("is_pinned", *patch.IsPinned)
	}
	if patch.IsPublic != nil {
		builder = builder.Set("is_public", *patch.IsPublic)
	}
	if patch.IsArchived != nil {
		builder = builder.Set("is_archived", *patch.IsArchived)
	}
	if patch.IsDeleted != nil {
		builder = builder.Set("is_deleted", *patch.IsDeleted)
		if *patch.IsDeleted {
			builder = builder.Set("deleted_at", now)
		} else {
			builder = builder.Set("deleted_at", sq.Expr("NULL"))
		}
	}

	return builder.
		Where(sq.Eq{"id": drawingID}).
		Suffix("RETURNING " + strings.Join(drawingColumns, ", ")).
		ToSql()
}

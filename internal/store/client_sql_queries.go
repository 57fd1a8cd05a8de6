// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createLocalSchema = `
		CREATE TABLE IF NOT EXISTS drawings (
			id          TEXT PRIMARY KEY,
			owner_id    TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT,
			is_pinned   BOOLEAN NOT NULL DEFAULT FALSE,
			is_public   BOOLEAN NOT NULL DEFAULT FALSE,
			is_archived BOOLEAN NOT NULL DEFAULT FALSE,
			is_deleted  BOOLEAN NOT NULL DEFAULT FALSE,
			created_at  TIMESTAMP NOT NULL,
			updated_at  TIMESTAMP NOT NULL,
			deleted_at  TIMESTAMP
		);`

	upsertLocalDrawing = `
		INSERT INTO drawings (
			id,
			owner_id,
			title,
			description,
			is_pinned,
			is_public,
			is_archived,
			is_deleted,
			created_at,
			updated_at,
			deleted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT(id) DO UPDATE SET
			owner_id    = excluded.owner_id,
			title       = excluded.title,
			description = excluded.description,
			is_pinned   = excluded.is_pinned,
			is_public   = excluded.is_public,
			is_archived = excluded.is_archived,
			is_deleted  = excluded.is_deleted,
			created_at  = excluded.created_at,
			updated_at  = excluded.updated_at,
			deleted_at  = excluded.deleted_at;`

	getLocalDrawing = `
		SELECT
			id,
			owner_id,
			title,
			description,
			is_pinned,
			is_public,
			is_archived,
			is_deleted,
			created_at,
			updated_at,
			deleted_at
		FROM drawings
		WHERE id = $1;`

	getAllLocalDrawings = `
		SELECT
			id,
			owner_id,
			title,
			description,
			is_pinned,
			is_public,
			is_archived,
			is_deleted,
			created_at,
			updated_at,
			deleted_at
		FROM drawings
		ORDER BY updated_at DESC;`

	deleteLocalDrawing = `DELETE FROM drawings WHERE id = $1;`

	deleteAllLocalDrawings = `DELETE FROM drawings;`
)

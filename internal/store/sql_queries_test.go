// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

func ptrOf[T any](v T) *T { return &v }

func Test_buildListDrawingsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListDrawingsQuery("user-1", models.ListQuery{
		Category: models.CategoryRecent,
		Page:     1,
		PageSize: 50,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from drawings")
	require.Contains(t, q, "where")
	require.Contains(t, q, "owner_id")
	require.Contains(t, q, "order by updated_at desc")
	require.Contains(t, q, "limit 50")
	require.Contains(t, q, "offset 0")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, args, "user-1")

	// columns presence (subset / key columns)
	for _, c := range drawingColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildListDrawingsQuery_CategoryPredicates(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		contains []string
		absent   []string
	}{
		{
			name:     "recent excludes archived and trashed",
			category: models.CategoryRecent,
			contains: []string{"is_deleted = $", "is_archived = $"},
			absent:   []string{"is_pinned = $", "is_public = $"},
		},
		{
			name:     "pinned excludes trashed",
			category: models.CategoryPinned,
			contains: []string{"is_deleted = $", "is_pinned = $"},
			absent:   []string{"is_archived = $", "is_public = $"},
		},
		{
			name:     "public excludes trashed",
			category: models.CategoryPublic,
			contains: []string{"is_deleted = $", "is_public = $"},
		},
		{
			name:     "archived excludes trashed",
			category: models.CategoryArchived,
			contains: []string{"is_deleted = $", "is_archived = $"},
		},
		{
			name:     "trash filters on is_deleted only",
			category: models.CategoryTrash,
			contains: []string{"is_deleted = $"},
			absent:   []string{"is_pinned = $", "is_public = $", "is_archived = $"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := buildListDrawingsQuery("user-1", models.ListQuery{
				Category: tt.category,
				Page:     1,
				PageSize: 10,
			})
			require.NoError(t, err)

			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			for _, fragment := range tt.absent {
				assert.NotContains(t, query, fragment)
			}
		})
	}
}

func Test_buildListDrawingsQuery_Search(t *testing.T) {
	t.Run("trimmed term becomes ILIKE pattern", func(t *testing.T) {
		query, args, err := buildListDrawingsQuery("user-1", models.ListQuery{
			Category: models.CategoryRecent,
			Page:     1,
			PageSize: 50,
			Search:   "  flow chart  ",
		})
		require.NoError(t, err)

		require.Contains(t, strings.ToUpper(query), "ILIKE")
		require.Contains(t, args, "%flow chart%")
	})

	t.Run("blank term adds no predicate", func(t *testing.T) {
		query, _, err := buildListDrawingsQuery("user-1", models.ListQuery{
			Category: models.CategoryRecent,
			Page:     1,
			PageSize: 50,
			Search:   "   ",
		})
		require.NoError(t, err)

		require.NotContains(t, strings.ToUpper(query), "ILIKE")
	})

	t.Run("metacharacters are escaped", func(t *testing.T) {
		_, args, err := buildListDrawingsQuery("user-1", models.ListQuery{
			Category: models.CategoryRecent,
			Page:     1,
			PageSize: 50,
			Search:   "100%_done",
		})
		require.NoError(t, err)

		require.Contains(t, args, `%100\%\_done%`)
	})
}

func Test_buildListDrawingsQuery_Pagination(t *testing.T) {
	query, _, err := buildListDrawingsQuery("user-1", models.ListQuery{
		Category: models.CategoryRecent,
		Page:     3,
		PageSize: 20,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "LIMIT 20")
	assert.Contains(t, query, "OFFSET 40")
}

func Test_buildCountDrawingsQuery(t *testing.T) {
	query, args, err := buildCountDrawingsQuery("user-1", models.ListQuery{
		Category: models.CategoryTrash,
		Page:     7,
		PageSize: 10,
		Search:   "boxes",
	})
	require.NoError(t, err)

	q := strings.ToUpper(query)
	assert.Contains(t, q, "COUNT(*)")
	assert.Contains(t, q, "FROM DRAWINGS")
	assert.Contains(t, q, "ILIKE")

	// pagination never applies to the count
	assert.NotContains(t, q, "LIMIT")
	assert.NotContains(t, q, "OFFSET")

	assert.Contains(t, args, "user-1")
	assert.Contains(t, args, "%boxes%")
}

func Test_buildUpdateMetadataQuery(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("only non-nil fields are set", func(t *testing.T) {
		query, args, err := buildUpdateMetadataQuery("d-1", models.MetadataPatch{
			Title:    ptrOf("Renamed"),
			IsPinned: ptrOf(true),
		}, now)
		require.NoError(t, err)

		assert.Contains(t, query, "title = $")
		assert.Contains(t, query, "is_pinned = $")
		assert.Contains(t, query, "updated_at = $")
		assert.NotContains(t, query, "description = $")
		assert.NotContains(t, query, "is_public = $")
		assert.NotContains(t, query, "is_archived = $")
		assert.NotContains(t, query, "deleted_at = $")

		assert.Contains(t, args, "Renamed")
		assert.Contains(t, args, true)
		assert.Contains(t, args, now)
		assert.Contains(t, args, "d-1")
	})

	t.Run("soft delete stamps deleted_at", func(t *testing.T) {
		query, args, err := buildUpdateMetadataQuery("d-1", models.MetadataPatch{
			IsDeleted: ptrOf(true),
		}, now)
		require.NoError(t, err)

		assert.Contains(t, query, "is_deleted = $")
		assert.Contains(t, query, "deleted_at = $")
		// updated_at and deleted_at carry the same stamp
		assert.Equal(t, 2, countOf(args, now))
	})

	t.Run("restore clears deleted_at", func(t *testing.T) {
		query, args, err := buildUpdateMetadataQuery("d-1", models.MetadataPatch{
			IsDeleted: ptrOf(false),
		}, now)
		require.NoError(t, err)

		assert.Contains(t, query, "deleted_at = NULL")
		assert.Contains(t, args, false)
	})

	t.Run("returns the full row", func(t *testing.T) {
		query, _, err := buildUpdateMetadataQuery("d-1", models.MetadataPatch{
			Title: ptrOf("x"),
		}, now)
		require.NoError(t, err)

		require.Contains(t, query, "RETURNING")
		for _, c := range drawingColumns {
			require.Contains(t, query, c)
		}
	})
}

func countOf(args []any, want any) int {
	n := 0
	for _, a := range args {
		if a == want {
			n++
		}
	}
	return n
}

func Test_escapeLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLikePattern(tt.in))
	}
}

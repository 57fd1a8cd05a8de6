// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category names a listing view over a user's drawings.
type Category string

const (
	CategoryRecent   Category = "recent"
	CategoryPinned   Category = "pinned"
	CategoryPublic   Category = "public"
	CategoryArchived Category = "archived"
	CategoryTrash    Category = "trash"
)

// Categories is the closed set of listing views, in display order.
var Categories = []Category{
	CategoryRecent,
	CategoryPinned,
	CategoryPublic,
	CategoryArchived,
	CategoryTrash,
}

// ParseCategory maps a raw query value to a Category. Unknown or empty values
// fall back to [CategoryRecent], matching the server's default listing view.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryPinned, CategoryPublic, CategoryArchived, CategoryTrash:
		return Category(raw)
	default:
		return CategoryRecent
	}
}

// InCategory reports whether the drawing belongs to the given listing view.
// Trash membership is decided by IsDeleted alone; every other view requires
// IsDeleted to be false, so a trashed drawing appears in exactly one view.
func (d *Drawing) InCategory(category Category) bool {
	switch category {
	case CategoryTrash:
		return d.IsDeleted
	case CategoryPinned:
		return !d.IsDeleted && d.IsPinned
	case CategoryPublic:
		return !d.IsDeleted && d.IsPublic
	case CategoryArchived:
		return !d.IsDeleted && d.IsArchived
	default: // recent
		return !d.IsDeleted && !d.IsArchived
	}
}

// FilterByCategory returns the subset of drawings that belong to the given
// listing view. The input is expected to already be scoped to a single owner;
// the function only applies the per-category flag rules.
func FilterByCategory(drawings []Drawing, category Category) []Drawing {
	filtered := make([]Drawing, 0, len(drawings))
	for i := range drawings {
		if drawings[i].InCategory(category) {
			filtered = append(filtered, drawings[i])
		}
	}
	return filtered
}

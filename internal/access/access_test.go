// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-sketch-keeper/models"
	"github.com/stretchr/testify/assert"
)

func drawing(owner string, mutate ...func(*models.Drawing)) *models.Drawing {
	now := time.Now().UTC()
	d := &models.Drawing{
		ID:        "11111111-1111-4111-8111-111111111111",
		OwnerID:   owner,
		Title:     models.DefaultDrawingTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, m := range mutate {
		m(d)
	}
	return d
}

func trashed(d *models.Drawing) {
	now := time.Now().UTC()
	d.IsDeleted = true
	d.DeletedAt = &now
}

func public(d *models.Drawing) { d.IsPublic = true }

func TestEvaluate_Decisions(t *testing.T) {
	owner := &models.Identity{ID: "u1"}
	stranger := &models.Identity{ID: "u2"}

	tests := []struct {
		name      string
		drawing   *models.Drawing
		requester *models.Identity
		want      Decision
	}{
		{"absent drawing, anonymous", nil, nil, NotFound},
		{"absent drawing, authenticated", nil, owner, NotFound},

		{"trashed, anonymous", drawing("u1", trashed), nil, Deleted},
		{"trashed, foreign user", drawing("u1", trashed), stranger, Deleted},
		{"trashed, owner may restore", drawing("u1", trashed), owner, Allowed},

		{"public, anonymous", drawing("u1", public), nil, PublicAccess},
		{"public, foreign user", drawing("u1", public), stranger, PublicAccess},
		{"public, owner", drawing("u1", public), owner, PublicAccess},

		{"private, anonymous", drawing("u1"), nil, LoginRequired},
		{"private, foreign user", drawing("u1"), stranger, Forbidden},
		{"private, owner", drawing("u1"), owner, Allowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.drawing, tt.requester))
		})
	}
}

// A trashed drawing stays invisible to non-owners even when it is also public:
// the deleted check must win over the public check.
func TestEvaluate_DeletedOutranksPublic(t *testing.T) {
	d := drawing("u1", trashed, public)

	assert.Equal(t, Deleted, Evaluate(d, nil))
	assert.Equal(t, Deleted, Evaluate(d, &models.Identity{ID: "u2"}))
	assert.Equal(t, Allowed, Evaluate(d, &models.Identity{ID: "u1"}))
}

func TestEvaluate_Deterministic(t *testing.T) {
	d := drawing("u1", public)
	requester := &models.Identity{ID: "u2"}

	first := Evaluate(d, requester)
	second := Evaluate(d, requester)
	assert.Equal(t, first, second)
}

func TestDecision_String(t *testing.T) {
	tags := map[Decision]string{
		NotFound:      "NOT_FOUND",
		Deleted:       "DELETED",
		PublicAccess:  "PUBLIC_ACCESS",
		LoginRequired: "LOGIN_REQUIRED",
		Forbidden:     "FORBIDDEN",
		Allowed:       "ALLOWED",
	}
	for decision, tag := range tags {
		assert.Equal(t, tag, decision.String())
	}
}

func TestDecision_Readable(t *testing.T) {
	assert.True(t, Allowed.Readable())
	assert.True(t, PublicAccess.Readable())
	assert.False(t, NotFound.Readable())
	assert.False(t, Deleted.Readable())
	assert.False(t, LoginRequired.Readable())
	assert.False(t, Forbidden.Readable())
}

func TestCanModify(t *testing.T) {
	d := drawing("u1", public)

	assert.True(t, CanModify(d, &models.Identity{ID: "u1"}))
	assert.False(t, CanModify(d, &models.Identity{ID: "u2"}), "public grants read, never write")
	assert.False(t, CanModify(d, nil))
	assert.False(t, CanModify(nil, &models.Identity{ID: "u1"}))
}

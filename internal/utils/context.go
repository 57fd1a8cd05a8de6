// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared across the
// application: type-safe context keys, JWT verification against the external
// auth provider, and drawing identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string-based keys from other packages.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authenticated requester is stored
// in the request context by the auth middleware. Absent key means the request
// is anonymous.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a child context carrying the given requester identity.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the requester identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — an authenticated identity is present
//   - ok == false — the request is anonymous (or the value has a wrong type)
func GetIdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(*models.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

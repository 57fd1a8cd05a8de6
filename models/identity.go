// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved principal of a request, produced by the external
// authentication provider and carried through the request context.
//
// A nil *Identity means the request is anonymous. Code never inspects anything
// beyond ID; the rest of the account record belongs to the auth provider.
type Identity struct {
	// ID is the stable opaque user identifier issued by the auth provider.
	ID string `json:"id"`

	// Name is the display name of the user, if the token carried one.
	Name string `json:"name,omitempty"`
}

// Token wraps a JWT bearer token issued by the external auth provider.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. The application only
// verifies tokens; it never issues them.
type Token struct {
	// Token is the underlying JWT used for signature and claim inspection.
	// Excluded from JSON serialization.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Identity builds the request principal from the token's "sub" claim.
// Returns a nil Identity and false if the subject claim is missing or empty.
func (t *Token) Identity() (*Identity, bool) {
	subject, err := t.GetSubject()
	if err != nil || subject == "" {
		return nil, false
	}

	return &Identity{ID: subject}, true
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

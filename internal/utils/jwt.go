// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sketch-keeper/models"
)

// ValidateAndParseJWTToken verifies a bearer token issued by the external
// auth provider and extracts its claims.
//
// Validation includes:
//   - signature verification with the shared HMAC sign key
//   - issuer (iss) claim check against tokenIssuer
//   - expiration (exp) claim check
//   - subject (sub) claim presence
//
// The application only verifies tokens, it never issues them; the sign key
// and issuer are shared configuration with the auth provider.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected claims type in token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsed := *claims
	parsed.Token = token
	parsed.SignedString = tokenString

	return parsed, nil
}

// ParseBearerToken extracts the token string from an "Authorization: Bearer
// <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseIdentityFromJWT extracts the requester identity from a token string
// without verifying the signature. The client uses it to learn its own user
// id from a token it received from the auth provider; the server always
// verifies instead.
func ParseIdentityFromJWT(tokenString string) (*models.Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	if sub == "" {
		return nil, errors.New("empty subject in token")
	}

	identity := &models.Identity{ID: sub}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}

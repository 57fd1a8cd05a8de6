// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "sketch-auth"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return signed
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	now := time.Now()
	raw := signedToken(t, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	token, err := ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
	require.NoError(t, err)

	identity, ok := token.Identity()
	require.True(t, ok)
	assert.Equal(t, "u1", identity.ID)
	assert.Equal(t, raw, token.String())
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	_, err := ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := ValidateAndParseJWTToken(raw, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}

func TestParseIdentityFromJWT(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: "u42",
	})

	identity, err := ParseIdentityFromJWT(raw)
	require.NoError(t, err)
	assert.Equal(t, "u42", identity.ID)

	_, err = ParseIdentityFromJWT("not-a-token")
	assert.Error(t, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sketch-keeper/internal/config"
	"github.com/MKhiriev/go-sketch-keeper/internal/logger"
	"github.com/MKhiriev/go-sketch-keeper/internal/utils"
	"github.com/MKhiriev/go-sketch-keeper/models"
)

type identityService struct {
	cfg config.Auth

	logger *logger.Logger
}

// NewIdentityService constructs an [IdentityService] that verifies tokens
// against the sign key and issuer shared with the external auth provider.
// Tokens are only ever verified here, never issued.
func NewIdentityService(cfg config.Auth, logger *logger.Logger) IdentityService {
	return &identityService{
		cfg:    cfg,
		logger: logger,
	}
}

// ParseToken verifies the bearer token and resolves the requester identity
// from its subject claim.
func (s *identityService) ParseToken(ctx context.Context, tokenString string) (*models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenIsExpired
		}
		log.Warn().
			Str("func", "identityService.ParseToken").
			Err(err).
			Msg("token verification failed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	identity, ok := token.Identity()
	if !ok {
		return nil, ErrInvalidToken
	}

	return identity, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks invariants that hold for every process regardless of role.
// Role-specific requirements live in [StructuredConfig.ValidateServer] and
// [StructuredConfig.ValidateClient], called by the respective entry points.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Client.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}
	return nil
}

// ValidateServer verifies everything the server process needs at startup.
func (cfg *StructuredConfig) ValidateServer() error {
	var errs []error
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoServerAddress)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if cfg.Auth.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	return errors.Join(errs...)
}

// ValidateClient verifies everything the terminal client needs at startup.
func (cfg *StructuredConfig) ValidateClient() error {
	var errs []error
	if cfg.Client.BaseURL == "" {
		errs = append(errs, ErrNoClientBaseURL)
	}
	if cfg.Client.Token == "" {
		errs = append(errs, ErrNoClientToken)
	}
	return errors.Join(errs...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrNegativeTimeout = errors.New("request timeout cannot be negative")

	ErrNoServerAddress = errors.New("server HTTP address is required")
	ErrNoDatabaseDSN   = errors.New("database DSN is required")
	ErrNoTokenSignKey  = errors.New("token sign key is required")

	ErrNoClientBaseURL = errors.New("client base URL is required")
	ErrNoClientToken   = errors.New("client bearer token is required")
)

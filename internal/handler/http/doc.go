// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
//
// Authentication is verify-only: tokens are issued by an external auth
// provider and checked against a shared sign key. Read routes accept
// anonymous requests (public drawings must be reachable without a token),
// while listing and every write route require authentication.
package http

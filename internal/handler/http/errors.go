// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors logged by the authentication middleware when the
// "Authorization" header cannot be used.
var (
	// ErrEmptyAuthorizationHeader is logged when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is logged when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext is logged when a protected handler runs without
	// authenticated claims.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)

// Messages produced by the transport itself.
const (
	MsgInvalidJSON          = "Invalid JSON was passed."
	MsgTooManyLoginAttempts = "Too many login attempts, try again later."
)

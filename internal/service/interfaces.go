// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-chat-accounts/models"
)

// CredentialService derives and checks one-way password secrets.
type CredentialService interface {
	// Hash returns an encoded secret that embeds its own salt and work factor.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether plaintext matches the encoded secret. Malformed
	// encodings never match.
	Verify(ctx context.Context, plaintext, encoded string) bool
}

// TokenService issues and verifies self-contained session tokens.
type TokenService interface {
	Issue(ctx context.Context, userID, email string) (models.Token, error)
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// UserDirectory is the user lookup and creation surface used by the other
// services.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Search(ctx context.Context, request models.SearchRequest) ([]models.UserSummary, error)
}

// WallpaperService replaces or removes a user's chat wallpaper, keeping the
// remote asset store in step.
type WallpaperService interface {
	SetWallpaper(ctx context.Context, userID string, change models.WallpaperChange) (models.WallpaperResult, error)
}

// AuthService is the login and registration gateway.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	Register(ctx context.Context, registration models.Registration) (models.Session, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

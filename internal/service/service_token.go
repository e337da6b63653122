// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
	"github.com/MKhiriev/go-chat-accounts/models"
)

// tokenService is the JWT implementation of [TokenService].
//
// Tokens are HS256-signed and carry the user ID as subject plus the email.
// Nothing is persisted: a token is valid until it expires.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the token settings in cfg.
// The returned service is safe for concurrent use.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue implements [TokenService]. A signing failure is an internal error.
func (s *tokenService) Issue(ctx context.Context, userID, email string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, email, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Str("user_id", userID).Msg("token creation failed")
		return models.Token{}, internalError(MsgSomethingWentWrong, err)
	}

	return token, nil
}

// Verify implements [TokenService]. Any validation failure (bad signature,
// wrong issuer, expired, malformed) is reported as [ErrUnauthorized].
func (s *tokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return models.Claims{}, unauthorizedError(MsgTokenFailed, err)
	}

	return claims, nil
}

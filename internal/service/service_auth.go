// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/store"
	"github.com/MKhiriev/go-chat-accounts/models"
)

// authService is the concrete implementation of AuthService.
// It validates login and registration input, delegates lookups and storage to
// the UserDirectory, and issues session tokens through the TokenService.
type authService struct {
	userDirectory     UserDirectory
	credentialService CredentialService
	tokenService      TokenService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userDirectory UserDirectory, credentialService CredentialService, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userDirectory:     userDirectory,
		credentialService: credentialService,
		tokenService:      tokenService,
		logger:            logger,
	}
}

// Login authenticates an existing user and opens a session.
//
// Validation errors, in order of precedence:
//   - ErrEmailRequired, ErrPasswordRequired for blank fields.
//   - ErrUnknownEmail if no user has this email.
//   - ErrInvalidCredentials if the password does not match.
//
// Every other failure is an internal error with MsgLoginFailed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if isBlank(credentials.Email) {
		return models.Session{}, ErrEmailRequired
	}
	if isBlank(credentials.Password) {
		return models.Session{}, ErrPasswordRequired
	}

	user, err := a.userDirectory.FindByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.Session{}, ErrUnknownEmail
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Session{}, internalError(MsgLoginFailed, err)
	}

	if !a.credentialService.Verify(ctx, credentials.Password, user.PasswordHash) {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(ctx, user.ID, user.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("creation of token failed")
		return models.Session{}, internalError(MsgLoginFailed, err)
	}

	log.Info().Str("user_id", user.ID).Msg("user successfully logged in")

	return models.Session{User: user, Token: token}, nil
}

// Register creates a user account and opens a session for it.
//
// Validation errors, in order of precedence:
//   - ErrNameRequired, ErrEmailRequired, ErrPasswordRequired,
//     ErrProfileImageRequired for blank fields.
//   - ErrEmailTaken if the email is already registered, including when a
//     concurrent registration wins the insert.
//
// Every other failure is an internal error with MsgRegisterFailed. The new
// user never has a wallpaper.
func (a *authService) Register(ctx context.Context, registration models.Registration) (models.Session, error) {
	log := logger.FromContext(ctx)

	switch {
	case isBlank(registration.Name):
		return models.Session{}, ErrNameRequired
	case isBlank(registration.Email):
		return models.Session{}, ErrEmailRequired
	case isBlank(registration.Password):
		return models.Session{}, ErrPasswordRequired
	case isBlank(registration.ProfileImage):
		return models.Session{}, ErrProfileImageRequired
	}

	_, err := a.userDirectory.FindByEmail(ctx, registration.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", registration.Email).Msg("email already registered")
		return models.Session{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user search by email failed")
		return models.Session{}, internalError(MsgRegisterFailed, err)
	}

	passwordHash, err := a.credentialService.Hash(ctx, registration.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.Session{}, internalError(MsgRegisterFailed, err)
	}

	user, err := a.userDirectory.Create(ctx, models.User{
		Name:         registration.Name,
		Email:        registration.Email,
		PasswordHash: passwordHash,
		ProfileImage: registration.ProfileImage,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.Session{}, ErrEmailTaken
		}
		return models.Session{}, internalError(MsgRegisterFailed, err)
	}

	token, err := a.tokenService.Issue(ctx, user.ID, user.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("user_id", user.ID).Msg("creation of token failed")
		return models.Session{}, internalError(MsgRegisterFailed, err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")

	return models.Session{User: user, Token: token}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

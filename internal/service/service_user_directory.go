// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/store"
	"github.com/MKhiriev/go-chat-accounts/models"
)

// SearchLimit caps the number of users returned by a search.
const SearchLimit = 10

type idGenerator interface {
	Generate() string
}

type userDirectory struct {
	userRepository store.UserRepository
	ids            idGenerator
	now            func() time.Time

	logger *logger.Logger
}

// NewUserDirectory constructs a [UserDirectory] over the given repository.
// New users get identifiers from ids.
func NewUserDirectory(userRepository store.UserRepository, ids idGenerator, logger *logger.Logger) UserDirectory {
	return &userDirectory{
		userRepository: userRepository,
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// FindByEmail returns the user with exactly this email. A missing user is
// reported as [store.ErrNoUserWasFound].
func (d *userDirectory) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := d.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

// FindByID returns the user with this identifier. A missing user is reported
// as [store.ErrNoUserWasFound].
func (d *userDirectory) FindByID(ctx context.Context, userID string) (models.User, error) {
	user, err := d.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// Create assigns an identifier and stores a new user without a wallpaper.
func (d *userDirectory) Create(ctx context.Context, user models.User) (models.User, error) {
	now := d.now().UTC()

	user.ID = d.ids.Generate()
	user.Wallpaper = nil
	user.Revision = 0
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := d.userRepository.CreateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*userDirectory.Create").
			Str("email", user.Email).
			Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Search returns at most [SearchLimit] users whose name or email contains the
// query, ignoring case. The query is a literal substring; only an empty query
// matches everyone. The caller is never part of the result.
func (d *userDirectory) Search(ctx context.Context, request models.SearchRequest) ([]models.UserSummary, error) {
	users, err := d.userRepository.SearchUsers(ctx, request, SearchLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*userDirectory.Search").
			Str("query", request.Query).
			Msg("user search failed")
		return nil, internalError(MsgSomethingWentWrong, err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		if user.ID == request.CallerID {
			continue
		}
		summaries = append(summaries, user.Summary())
		if len(summaries) == SearchLimit {
			break
		}
	}

	return summaries, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/store"
	"github.com/MKhiriev/go-chat-accounts/models"
)

// wallpaperService implements [WallpaperService].
//
// A change runs in two phases: cleanupPrevious destroys the current remote
// asset on a best-effort basis, then persist stores the new wallpaper with an
// optimistic revision check. Only a persist failure fails the change.
type wallpaperService struct {
	userRepository store.UserRepository
	assetStorage   store.AssetStorage

	logger *logger.Logger
}

// NewWallpaperService constructs a [WallpaperService].
func NewWallpaperService(userRepository store.UserRepository, assetStorage store.AssetStorage, logger *logger.Logger) WallpaperService {
	return &wallpaperService{
		userRepository: userRepository,
		assetStorage:   assetStorage,
		logger:         logger,
	}
}

// SetWallpaper replaces the wallpaper of userID with change.Wallpaper, or
// clears it when change.Remove is set.
//
// Errors:
//   - [ErrWallpaperRequired] if neither a complete wallpaper nor Remove is given.
//     Nothing is deleted remotely in that case.
//   - [ErrInternal] if the user cannot be loaded or the update cannot be stored.
func (s *wallpaperService) SetWallpaper(ctx context.Context, userID string, change models.WallpaperChange) (models.WallpaperResult, error) {
	log := logger.FromContext(ctx).With().Str("user_id", userID).Logger()

	var next *models.Wallpaper
	if !change.Remove {
		if change.Wallpaper == nil {
			return models.WallpaperResult{}, ErrWallpaperRequired
		}
		wallpaper, err := models.NewWallpaper(change.Wallpaper.ImageURL, change.Wallpaper.AssetID)
		if err != nil {
			return models.WallpaperResult{}, ErrWallpaperRequired
		}
		next = wallpaper
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*wallpaperService.SetWallpaper").Msg("user lookup failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.WallpaperResult{}, internalError(MsgUserLookupFailed, err)
		}
		return models.WallpaperResult{}, internalError(MsgWallpaperFailed, err)
	}

	result := s.cleanupPrevious(ctx, user)

	user.Wallpaper = next
	updated, err := s.persist(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*wallpaperService.SetWallpaper").Msg("wallpaper update failed")
		return models.WallpaperResult{}, internalError(MsgWallpaperFailed, err)
	}

	result.Wallpaper = updated.Wallpaper
	if change.Remove {
		result.Message = MsgWallpaperRemoved
	} else {
		result.Message = MsgWallpaperAdded
	}

	log.Info().
		Bool("removed", change.Remove).
		Bool("cleanup_attempted", result.CleanupAttempted).
		Int64("revision", updated.Revision).
		Msg("wallpaper changed")

	return result, nil
}

// cleanupPrevious destroys the user's current remote asset, if any. A failed
// destroy is recorded in the result and logged, never returned.
func (s *wallpaperService) cleanupPrevious(ctx context.Context, user models.User) models.WallpaperResult {
	var result models.WallpaperResult
	if !user.Wallpaper.IsComplete() {
		return result
	}

	result.CleanupAttempted = true
	if err := s.assetStorage.Destroy(ctx, user.Wallpaper.AssetID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*wallpaperService.cleanupPrevious").
			Str("user_id", user.ID).
			Str("asset_id", user.Wallpaper.AssetID).
			Msg("previous wallpaper asset was not destroyed")
		result.CleanupErr = err
	}

	return result
}

func (s *wallpaperService) persist(ctx context.Context, user models.User) (models.User, error) {
	updated, err := s.userRepository.UpdateWallpaper(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error persisting wallpaper: %w", err)
	}

	return updated, nil
}

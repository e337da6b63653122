// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrIncompleteWallpaper is returned by [NewWallpaper] when either half of
// the pair is blank.
var ErrIncompleteWallpaper = errors.New("wallpaper requires both image url and asset id")

// Wallpaper is a remote image asset attached to a user's chat view.
//
// A present wallpaper always has both fields set; absence is represented by a
// nil *Wallpaper, never by blank fields.
type Wallpaper struct {
	// ImageURL is the retrieval URL returned by the media provider.
	ImageURL string `json:"image_url"`

	// AssetID is the provider's identifier used to destroy the asset.
	AssetID string `json:"public_id"`
}

// NewWallpaper builds a present wallpaper, refusing half-populated pairs.
func NewWallpaper(imageURL, assetID string) (*Wallpaper, error) {
	w := &Wallpaper{
		ImageURL: strings.TrimSpace(imageURL),
		AssetID:  strings.TrimSpace(assetID),
	}
	if !w.IsComplete() {
		return nil, ErrIncompleteWallpaper
	}

	return w, nil
}

// IsComplete reports whether both halves of the pair are non-blank.
// A nil receiver is not complete.
func (w *Wallpaper) IsComplete() bool {
	return w != nil && w.ImageURL != "" && w.AssetID != ""
}

// WallpaperChange is a request to replace or remove the wallpaper.
type WallpaperChange struct {
	// Wallpaper is the new, already uploaded asset. Ignored when Remove is set.
	Wallpaper *Wallpaper `json:"wallpaper,omitempty"`

	// Remove clears the wallpaper.
	Remove bool `json:"remove"`
}

// WallpaperResult describes the outcome of a wallpaper change.
type WallpaperResult struct {
	// Message is the human-readable outcome.
	Message string

	// Wallpaper is the persisted wallpaper; nil after a removal.
	Wallpaper *Wallpaper

	// CleanupAttempted reports whether a previous asset existed and its
	// remote deletion was tried.
	CleanupAttempted bool

	// CleanupErr holds the remote deletion failure, if any. It never fails
	// the change itself.
	CleanupErr error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope shared by every JSON response.
type Response struct {
	// Success is false for every error response.
	Success bool `json:"success"`

	// Message is a human-readable, client-safe outcome description.
	Message string `json:"message"`
}

// SessionUser is the user block returned by login and registration.
type SessionUser struct {
	UserID       string     `json:"userId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	ProfileImage string     `json:"profileImage"`
	Wallpaper    *Wallpaper `json:"chatWallpaper,omitempty"`
	Token        string     `json:"token"`
}

// NewSessionUser flattens a session into its response block.
func NewSessionUser(session Session) SessionUser {
	return SessionUser{
		UserID:       session.User.ID,
		Name:         session.User.Name,
		Email:        session.User.Email,
		ProfileImage: session.User.ProfileImage,
		Wallpaper:    session.User.Wallpaper,
		Token:        session.Token.String(),
	}
}

// SessionResponse is returned by login and registration.
type SessionResponse struct {
	Response
	User SessionUser `json:"user"`
}

// SearchResponse is returned by the user search.
type SearchResponse struct {
	Response
	Users []UserSummary `json:"users"`
}

// WallpaperResponse is returned by the chat wallpaper endpoint.
// A removed wallpaper is rendered as null.
type WallpaperResponse struct {
	Response
	Wallpaper *Wallpaper `json:"chatWallpaper"`
}

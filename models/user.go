// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a chat account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier assigned at registration.
	ID string `json:"userId"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is unique across all users and is used as the login key.
	// Comparison is case-sensitive, exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the encoded one-way derived secret.
	// It is never serialised.
	PasswordHash string `json:"-"`

	// ProfileImage is an opaque reference to an already uploaded picture.
	ProfileImage string `json:"profileImage"`

	// Wallpaper is the user's chat wallpaper. nil means no wallpaper.
	Wallpaper *Wallpaper `json:"chatWallpaper,omitempty"`

	// Revision is incremented on every wallpaper change and used as the
	// optimistic-lock token when persisting.
	Revision int64 `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public projection of the user used in search results.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

// UserSummary is the projection of [User] returned by the user search.
// It deliberately has no password or wallpaper fields.
type UserSummary struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up request payload.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profileImage"`
}

// SearchRequest describes a user search issued by an authenticated caller.
type SearchRequest struct {
	// Query is matched as a case-insensitive substring of name or email.
	// An empty query matches everybody.
	Query string

	// CallerID is excluded from the results.
	CallerID string
}

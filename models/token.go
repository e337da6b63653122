// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by a session token.
//
// The subject ("sub") holds the user ID. Issuer, issued-at and expiry are the
// standard registered claims.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the subject's email at issuance time.
	Email string `json:"email"`
}

// UserID returns the subject claim.
func (c Claims) UserID() string {
	return c.Subject
}

// Token is an issued session token.
type Token struct {
	// Claims are the decoded claims of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Session is the outcome of a successful login or registration.
type Session struct {
	User  User
	Token Token
}

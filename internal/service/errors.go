// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service operation matches exactly one
// of them with [errors.Is]; the HTTP layer maps the kind to a status code.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// Error is a classified service failure.
//
// Message is safe to show to the client. Err is the underlying cause and is
// only logged.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind and the cause to [errors.Is] and [errors.As].
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func validationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

func unauthorizedError(message string, cause error) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message, Err: cause}
}

func internalError(message string, cause error) *Error {
	return &Error{Kind: ErrInternal, Message: message, Err: cause}
}

// Client-facing messages.
const (
	MsgLoginSuccessful        = "Login successful!"
	MsgRegistrationSuccessful = "Registration successful!"
	MsgUsersFound             = "Users found."
	MsgWallpaperRemoved       = "Wallpaper removed!"
	MsgWallpaperAdded         = "New Wallpaper added!"

	MsgLoginFailed        = "Something went wrong, failed to login."
	MsgRegisterFailed     = "Something went wrong, failed to register."
	MsgSomethingWentWrong = "Something went wrong."
	MsgUserLookupFailed   = "Something went wrong, failed to find user."
	MsgWallpaperFailed    = "Something went wrong, failed to add chat wallpaper."

	MsgNoToken     = "Not authorized, no token."
	MsgTokenFailed = "Not authorized, token failed."
)

// Validation failures. They are returned as-is, so callers may compare
// against them directly or check the kind with errors.Is(err, ErrValidation).
var (
	ErrEmailRequired        = validationError("Email is required.")
	ErrPasswordRequired     = validationError("Password is required.")
	ErrNameRequired         = validationError("Name is required.")
	ErrProfileImageRequired = validationError("Profile picture is required.")
	ErrWallpaperRequired    = validationError("Wallpaper is required.")
	ErrUnknownEmail         = validationError("Cannot find a user with the provided email id. Please provide valid credentials or try signing up instead.")
	ErrInvalidCredentials   = validationError("Invalid credentials.")
	ErrEmailTaken           = validationError("A user already exists with provided email id.")
)

// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the build
// version is empty.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")

// MessageOf returns the client-safe message of err, or fallback when err is
// not a classified service error.
func MessageOf(err error, fallback string) string {
	var serviceErr *Error
	if errors.As(err, &serviceErr) && serviceErr.Message != "" {
		return serviceErr.Message
	}
	return fallback
}

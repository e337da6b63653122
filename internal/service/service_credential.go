// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"golang.org/x/crypto/argon2"
)

const (
	argonSaltLength = 16
	argonKeyLength  = 32

	maxArgonKeyLength = 128
)

// argonCredentialService implements [CredentialService] with Argon2id.
//
// Encoded secrets use the PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
//
// where salt and key are unpadded standard base64.
type argonCredentialService struct {
	time    uint32
	memory  uint32
	threads uint8

	random io.Reader
	logger *logger.Logger
}

// NewCredentialService constructs an Argon2id [CredentialService] using the
// work factor from cfg.
func NewCredentialService(cfg config.App, logger *logger.Logger) CredentialService {
	return &argonCredentialService{
		time:    cfg.ArgonTime,
		memory:  cfg.ArgonMemory,
		threads: cfg.ArgonThreads,
		random:  rand.Reader,
		logger:  logger,
	}
}

// Hash implements [CredentialService].
func (s *argonCredentialService) Hash(ctx context.Context, plaintext string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := io.ReadFull(s.random, salt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*argonCredentialService.Hash").Msg("error generating salt")
		return "", internalError(MsgSomethingWentWrong, fmt.Errorf("error generating salt: %w", err))
	}

	key := argon2.IDKey([]byte(plaintext), salt, s.time, s.memory, s.threads, argonKeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, s.memory, s.time, s.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [CredentialService].
func (s *argonCredentialService) Verify(ctx context.Context, plaintext, encoded string) bool {
	params, salt, key, err := decodeArgonSecret(encoded)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*argonCredentialService.Verify").Msg("stored secret is malformed")
		return false
	}

	derived := argon2.IDKey([]byte(plaintext), salt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1
}

type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

func decodeArgonSecret(encoded string) (argonParams, []byte, []byte, error) {
	var params argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, errors.New("unexpected secret format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("error parsing version: %w", err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, fmt.Errorf("error parsing parameters: %w", err)
	}
	if params.memory == 0 || params.memory > config.MaxArgonMemory ||
		params.time == 0 || params.time > config.MaxArgonTime ||
		params.threads == 0 {
		return params, nil, nil, errors.New("parameters out of range")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("error decoding salt: %w", err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("error decoding key: %w", err)
	}

	if len(salt) == 0 || len(key) == 0 || len(key) > maxArgonKeyLength {
		return params, nil, nil, errors.New("salt or key length out of range")
	}

	return params, salt, key, nil
}

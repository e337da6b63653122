// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Assets.validate(),
	)
}

func (a App) validate() error {
	switch {
	case a.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case a.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case a.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case a.ArgonTime == 0 || a.ArgonMemory == 0 || a.ArgonThreads == 0:
		return fmt.Errorf("%w: argon2 parameters must be positive", ErrInvalidAppConfigs)
	case a.ArgonTime > MaxArgonTime:
		return fmt.Errorf("%w: argon2 time must not exceed %d", ErrInvalidAppConfigs, MaxArgonTime)
	case a.ArgonMemory > MaxArgonMemory:
		return fmt.Errorf("%w: argon2 memory must not exceed %d KiB", ErrInvalidAppConfigs, MaxArgonMemory)
	case a.LoginAttemptsPerMinute < 0:
		return fmt.Errorf("%w: login attempts per minute must not be negative", ErrInvalidAppConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}

func (a Assets) validate() error {
	switch a.Provider {
	case AssetsProviderCloudinary:
		if a.CloudName == "" || a.APIKey == "" || a.APISecret == "" {
			return fmt.Errorf("%w: cloudinary requires cloud name, api key and api secret", ErrInvalidAssetsConfigs)
		}
	case AssetsProviderS3:
		if a.Bucket == "" || a.Region == "" || a.APIKey == "" || a.APISecret == "" {
			return fmt.Errorf("%w: s3 requires bucket, region, api key and api secret", ErrInvalidAssetsConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidAssetsConfigs, a.Provider)
	}

	return nil
}

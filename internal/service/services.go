// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/store"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
	"github.com/MKhiriev/go-chat-accounts/models"
)

type Services struct {
	CredentialService CredentialService
	TokenService      TokenService
	UserDirectory     UserDirectory
	WallpaperService  WallpaperService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	credentialService := NewCredentialService(cfg.App, logger)
	tokenService := NewTokenService(cfg.App, logger)
	userDirectory := NewUserDirectory(storages.UserRepository, utils.NewUUIDGenerator(), logger)

	return &Services{
		CredentialService: credentialService,
		TokenService:      tokenService,
		UserDirectory:     userDirectory,
		WallpaperService:  NewWallpaperService(storages.UserRepository, storages.AssetStorage, logger),
		AuthService:       NewAuthService(userDirectory, credentialService, tokenService, logger),
		AppInfoService:    appInfoService,
	}, nil
}

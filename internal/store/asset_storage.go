package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
)

// NewAssetStorage returns the [AssetStorage] for cfg.Provider.
func NewAssetStorage(ctx context.Context, cfg config.Assets, log *logger.Logger) (AssetStorage, error) {
	log.Debug().Str("provider", cfg.Provider).Msg("creating asset storage")

	switch cfg.Provider {
	case config.AssetsProviderCloudinary:
		return newCloudinaryAssetStorage(cfg, log), nil
	case config.AssetsProviderS3:
		return newS3AssetStorage(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssetProvider, cfg.Provider)
	}
}

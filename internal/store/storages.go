package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
)

// Storages groups the persistence dependencies of the service layer.
type Storages struct {
	UserRepository UserRepository
	AssetStorage   AssetStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// asset storage for the configured provider.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	assets, err := NewAssetStorage(ctx, cfg.Assets, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		AssetStorage:   assets,
		db:             db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

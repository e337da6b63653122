package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-chat-accounts/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail and FindUserByID yield [ErrNoUserWasFound] when no row
	// matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// SearchUsers matches the query against name or email, case-insensitively,
	// excluding the caller. At most limit users are returned.
	SearchUsers(ctx context.Context, request models.SearchRequest, limit uint64) ([]models.User, error)

	// UpdateWallpaper stores user.Wallpaper if the stored revision still equals
	// user.Revision and returns the user with the incremented revision.
	// A stale revision yields [ErrVersionConflict].
	UpdateWallpaper(ctx context.Context, user models.User) (models.User, error)
}

// AssetStorage is the remote media provider holding wallpaper images.
type AssetStorage interface {
	// Destroy deletes the asset. Deleting a missing asset is not an error.
	Destroy(ctx context.Context, assetID string) error
}

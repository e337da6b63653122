package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/mock"
	"github.com/MKhiriev/go-chat-accounts/internal/store"
	"github.com/MKhiriev/go-chat-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWallpaperSvc(t *testing.T) (WallpaperService, *mock.MockUserRepository, *mock.MockAssetStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	assets := mock.NewMockAssetStorage(ctrl)

	return NewWallpaperService(repo, assets, logger.Nop()), repo, assets
}

// bumpRevision mimics a successful compare-and-swap update.
func bumpRevision(_ context.Context, u models.User) (models.User, error) {
	u.Revision++
	return u, nil
}

func TestSetWallpaper_ReplaceDestroysOldThenPersists(t *testing.T) {
	svc, repo, assets := newTestWallpaperSvc(t)
	ctx := context.Background()

	ann := models.User{
		ID:        "ann",
		Email:     "ann@x.io",
		Wallpaper: &models.Wallpaper{ImageURL: "https://cdn/u1.jpg", AssetID: "p1"},
		Revision:  3,
	}

	gomock.InOrder(
		repo.EXPECT().FindUserByID(ctx, "ann").Return(ann, nil),
		assets.EXPECT().Destroy(ctx, "p1").Return(nil),
		repo.EXPECT().UpdateWallpaper(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u models.User) (models.User, error) {
				assert.Equal(t, int64(3), u.Revision)
				assert.Equal(t, &models.Wallpaper{ImageURL: "https://cdn/u2.jpg", AssetID: "p2"}, u.Wallpaper)
				return bumpRevision(ctx, u)
			}),
	)

	result, err := svc.SetWallpaper(ctx, "ann", models.WallpaperChange{
		Wallpaper: &models.Wallpaper{ImageURL: "https://cdn/u2.jpg", AssetID: "p2"},
	})

	require.NoError(t, err)
	assert.Equal(t, MsgWallpaperAdded, result.Message)
	assert.Equal(t, &models.Wallpaper{ImageURL: "https://cdn/u2.jpg", AssetID: "p2"}, result.Wallpaper)
	assert.True(t, result.CleanupAttempted)
	assert.NoError(t, result.CleanupErr)
}

func TestSetWallpaper_RemoveExisting(t *testing.T) {
	svc, repo, assets := newTestWallpaperSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByID(ctx, "ann").
			Return(models.User{ID: "ann", Wallpaper: &models.Wallpaper{ImageURL: "u", AssetID: "p1"}}, nil),
		assets.EXPECT().Destroy(ctx, "p1").Return(nil),
		repo.EXPECT().UpdateWallpaper(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u models.User) (models.User, error) {
				assert.Nil(t, u.Wallpaper)
				return bumpRevision(ctx, u)
			}),
	)

	result, err := svc.SetWallpaper(ctx, "ann", models.WallpaperChange{Remove: true})

	require.NoError(t, err)
	assert.Equal(t, MsgWallpaperRemoved, result.Message)
	assert.Nil(t, result.Wallpaper)
	assert.True(t, result.CleanupAttempted)
}

func TestSetWallpaper_RemoveWithoutExisting(t *testing.T) {
	svc, repo, _ := newTestWallpaperSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "bob").Return(models.User{ID: "bob"}, nil)
	repo.EXPECT().UpdateWallpaper(ctx, gomock.Any()).DoAndReturn(bumpRevision)

	result, err := svc.SetWallpaper(ctx, "bob", models.WallpaperChange{Remove: true, Wallpaper: &models.Wallpaper{ImageURL: "ignored"}})

	require.NoError(t, err)
	assert.Equal(t, MsgWallpaperRemoved, result.Message)
	assert.Nil(t, result.Wallpaper)
	assert.False(t, result.CleanupAttempted)
}

func TestSetWallpaper_AddFirst(t *testing.T) {
	svc, repo, _ := newTestWallpaperSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "bob").Return(models.User{ID: "bob"}, nil)
	repo.EXPECT().UpdateWallpaper(ctx, gomock.Any()).DoAndReturn(bumpRevision)

	result, err := svc.SetWallpaper(ctx, "bob", models.WallpaperChange{
		Wallpaper: &models.Wallpaper{ImageURL: " https://cdn/b.jpg ", AssetID: "pb"},
	})

	require.NoError(t, err)
	assert.Equal(t, MsgWallpaperAdded, result.Message)
	assert.Equal(t, &models.Wallpaper{ImageURL: "https://cdn/b.jpg", AssetID: "pb"}, result.Wallpaper)
	assert.False(t, result.CleanupAttempted)
}

func TestSetWallpaper_DestroyFailureIsNotFatal(t *testing.T) {
	svc, repo, assets := newTestWallpaperSvc(t)
	ctx := context.Background()
	destroyErr := errors.New("provider unavailable")

	repo.EXPECT().FindUserByID(ctx, "ann").
		Return(models.User{ID: "ann", Wallpaper: &models.Wallpaper{ImageURL: "u1", AssetID: "p1"}}, nil)
	assets.EXPECT().Destroy(ctx, "p1").Return(destroyErr)
	repo.EXPECT().UpdateWallpaper(ctx, gomock.Any()).DoAndReturn(bumpRevision)

	result, err := svc.SetWallpaper(ctx, "ann", models.WallpaperChange{
		Wallpaper: &models.Wallpaper{ImageURL: "u2", AssetID: "p2"},
	})

	require.NoError(t, err)
	assert.Equal(t, MsgWallpaperAdded, result.Message)
	assert.True(t, result.CleanupAttempted)
	assert.ErrorIs(t, result.CleanupErr, destroyErr)
	assert.Equal(t, "p2", result.Wallpaper.AssetID)
}

func TestSetWallpaper_PersistFailureIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
	}{
		{name: "database error", storeErr: errors.New("connection reset")},
		{name: "concurrent update", storeErr: store.ErrVersionConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, assets := newTestWallpaperSvc(t)
			ctx := context.Background()

			repo.EXPECT().FindUserByID(ctx, "ann").
				Return(models.User{ID: "ann", Wallpaper: &models.Wallpaper{ImageURL: "u1", AssetID: "p1"}}, nil)
			assets.EXPECT().Destroy(ctx, "p1").Return(nil)
			repo.EXPECT().UpdateWallpaper(ctx, gomock.Any()).Return(models.User{}, tt.storeErr)

			_, err := svc.SetWallpaper(ctx, "ann", models.WallpaperChange{
				Wallpaper: &models.Wallpaper{ImageURL: "u2", AssetID: "p2"},
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInternal)
			assert.ErrorIs(t, err, tt.storeErr)
			assert.Equal(t, MsgWallpaperFailed, MessageOf(err, ""))
		})
	}
}

func TestSetWallpaper_UserLookupFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "missing user", err: store.ErrNoUserWasFound, message: MsgUserLookupFailed},
		{name: "database error", err: errors.New("timeout"), message: MsgWallpaperFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestWallpaperSvc(t)

			repo.EXPECT().FindUserByID(gomock.Any(), "ghost").Return(models.User{}, tt.err)

			_, err := svc.SetWallpaper(context.Background(), "ghost", models.WallpaperChange{Remove: true})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInternal)
			assert.Equal(t, tt.message, MessageOf(err, ""))
		})
	}
}

func TestSetWallpaper_IncompleteWallpaperRejectedBeforeAnySideEffect(t *testing.T) {
	tests := []struct {
		name   string
		change models.WallpaperChange
	}{
		{name: "nothing", change: models.WallpaperChange{}},
		{name: "missing asset id", change: models.WallpaperChange{Wallpaper: &models.Wallpaper{ImageURL: "u"}}},
		{name: "blank url", change: models.WallpaperChange{Wallpaper: &models.Wallpaper{ImageURL: "  ", AssetID: "p"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any repository or asset call fails the test
			svc, _, _ := newTestWallpaperSvc(t)

			_, err := svc.SetWallpaper(context.Background(), "ann", tt.change)

			assert.Equal(t, ErrWallpaperRequired, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userRowColumns = []string{
	"id", "name", "email", "password_hash", "profile_image",
	"wallpaper_url", "wallpaper_asset_id", "revision", "created_at", "updated_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(db, l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	user := models.User{
		ID:           "u1",
		Name:         "Ann",
		Email:        "ann@x.io",
		PasswordHash: "hash",
		ProfileImage: "https://img/ann.png",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u1", "Ann", "ann@x.io", "hash", "https://img/ann.png", nil, nil, int64(0), now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u1", "Ann", "ann@x.io", "hash", "https://img/ann.png", int64(0), now, now).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "u1" {
		t.Errorf("expected ID=u1, got %s", created.ID)
	}
	if created.Wallpaper != nil {
		t.Errorf("expected no wallpaper, got %+v", created.Wallpaper)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@x.io"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	dbErr := pgError(pgerrcode.ConnectionFailure)
	mock.ExpectQuery("INSERT INTO users").WillReturnError(dbErr)

	_, err := repo.CreateUser(context.Background(), models.User{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !errors.Is(err, dbErr) {
		t.Errorf("expected driver error to be wrapped, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u1")
	mock.ExpectQuery("INSERT INTO users").WillReturnRows(rows)

	_, err := repo.CreateUser(context.Background(), models.User{})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u1", "Ann", "ann@x.io", "hash", "p", "https://cdn/w.jpg", "w1", int64(4), now, now)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("ann@x.io").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(context.Background(), "ann@x.io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash != "hash" {
		t.Errorf("expected password hash to be loaded, got %q", user.PasswordHash)
	}
	if user.Revision != 4 {
		t.Errorf("expected revision 4, got %d", user.Revision)
	}
	if user.Wallpaper == nil || user.Wallpaper.ImageURL != "https://cdn/w.jpg" || user.Wallpaper.AssetID != "w1" {
		t.Errorf("unexpected wallpaper: %+v", user.Wallpaper)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("Ann@x.io").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "Ann@x.io")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs("u1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), "u1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByID(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestSearchUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u1", "Ann", "ann@x.io", "h1", "p1", nil, nil, int64(0), now, now).
		AddRow("u2", "Joanne", "jo@x.io", "h2", "p2", "https://cdn/w.jpg", "w1", int64(2), now, now)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE (.+) ORDER BY name, id LIMIT 10").
		WithArgs("me", "%an%", "%an%").
		WillReturnRows(rows)

	users, err := repo.SearchUsers(context.Background(), models.SearchRequest{Query: "an", CallerID: "me"}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Wallpaper == nil {
		t.Errorf("expected wallpaper for second user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSearchUsers_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("timeout"))

	_, err := repo.SearchUsers(context.Background(), models.SearchRequest{CallerID: "me"}, 10)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSearchUsers_RowError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow("u1", "Ann", "ann@x.io", "h1", "p1", nil, nil, int64(0), now, now).
		RowError(0, errors.New("broken row"))

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	_, err := repo.SearchUsers(context.Background(), models.SearchRequest{CallerID: "me"}, 10)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestUpdateWallpaper_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("UPDATE users SET (.+) WHERE (.+) RETURNING revision, updated_at").
		WithArgs("https://cdn/w.jpg", "w1", "u1", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"revision", "updated_at"}).AddRow(int64(4), now))

	updated, err := repo.UpdateWallpaper(context.Background(), models.User{
		ID:        "u1",
		Wallpaper: &models.Wallpaper{ImageURL: "https://cdn/w.jpg", AssetID: "w1"},
		Revision:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Revision != 4 {
		t.Errorf("expected revision 4, got %d", updated.Revision)
	}
	if !updated.UpdatedAt.Equal(now) {
		t.Errorf("expected updated_at %v, got %v", now, updated.UpdatedAt)
	}
}

func TestUpdateWallpaper_Remove(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users SET (.+) RETURNING revision, updated_at").
		WithArgs(nil, nil, "u1", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"revision", "updated_at"}).AddRow(int64(1), time.Now()))

	updated, err := repo.UpdateWallpaper(context.Background(), models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Wallpaper != nil {
		t.Errorf("expected wallpaper to stay nil, got %+v", updated.Wallpaper)
	}
}

func TestUpdateWallpaper_StaleRevision(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users SET (.+) RETURNING revision, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"revision", "updated_at"}))

	_, err := repo.UpdateWallpaper(context.Background(), models.User{ID: "u1", Revision: 2})
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestUpdateWallpaper_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.UpdateWallpaper(context.Background(), models.User{ID: "u1"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

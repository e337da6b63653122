package store

import (
	"strings"

	"github.com/MKhiriev/go-chat-accounts/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, name, email, password_hash, profile_image, revision, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, name, email, password_hash, profile_image, wallpaper_url, wallpaper_asset_id, revision, created_at, updated_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, profile_image, wallpaper_url, wallpaper_asset_id, revision, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password_hash, profile_image, wallpaper_url, wallpaper_asset_id, revision, created_at, updated_at
    FROM users
    WHERE id = $1;`
)

var userColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"profile_image",
	"wallpaper_url",
	"wallpaper_asset_id",
	"revision",
	"created_at",
	"updated_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// likeEscaper escapes LIKE wildcards so the query is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildSearchUsersQuery selects users whose name or email contains the query,
// ignoring case, never including the caller.
func buildSearchUsersQuery(request models.SearchRequest, limit uint64) (string, []any, error) {
	builder := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.NotEq{"id": request.CallerID})

	if request.Query != "" {
		pattern := "%" + likeEscaper.Replace(request.Query) + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	return builder.
		OrderBy("name", "id").
		Limit(limit).
		ToSql()
}

// buildUpdateWallpaperQuery writes the wallpaper pair only if the stored
// revision still equals user.Revision.
func buildUpdateWallpaperQuery(user models.User) (string, []any, error) {
	var imageURL, assetID any
	if user.Wallpaper != nil {
		imageURL = user.Wallpaper.ImageURL
		assetID = user.Wallpaper.AssetID
	}

	return psql.
		Update(models.User{}.TableName()).
		Set("wallpaper_url", imageURL).
		Set("wallpaper_asset_id", assetID).
		Set("revision", squirrel.Expr("revision + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID, "revision": user.Revision}).
		Suffix("RETURNING revision, updated_at").
		ToSql()
}

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-server/models"
)

var userColumns = []string{
	"user_id",
	"full_name",
	"email",
	"password_hash",
	"profile_pic",
	"created_at",
	"updated_at",
}

// returningUser makes INSERT/UPDATE hand back the stored row.
// Both PostgreSQL and SQLite (3.35+) support RETURNING.
const returningUser = "RETURNING user_id, full_name, email, password_hash, profile_pic, created_at, updated_at"

func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder().
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.FullName, user.Email, user.PasswordHash, user.ProfilePic, user.CreatedAt, user.UpdatedAt).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// findUserQuery selects a single user where column equals value.
func (db *DB) findUserQuery(column, value string) (string, []any, error) {
	query, args, err := db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) updateProfilePicQuery(userID, profilePicURL string, updatedAt time.Time) (string, []any, error) {
	query, args, err := db.builder().
		Update(models.User{}.TableName()).
		Set("profile_pic", profilePicURL).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

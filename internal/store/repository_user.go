package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/utils"
	"github.com/MKhiriev/go-auth-server/models"
)

// idGenerator issues identifiers for new user rows.
type idGenerator interface {
	Generate() string
}

// userRepository is the SQL implementation of [UserRepository], shared by
// the PostgreSQL and SQLite backends. Queries are built with squirrel using
// the placeholder format of the underlying [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db  *DB
	ids idGenerator
	now func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db. New users
// receive UUIDv7 identifiers.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:  db,
		ids: utils.NewUUIDGenerator(),
		now: time.Now,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user       models.User
		profilePic sql.NullString
	)

	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &profilePic, dbTime{&user.CreatedAt}, dbTime{&user.UpdatedAt})
	if err != nil {
		return models.User{}, err
	}

	if profilePic.Valid {
		user.ProfilePic = &profilePic.String
	}

	return user, nil
}

// CreateUser inserts a new row and returns it as stored.
//
// Error handling:
//   - UNIQUE(email) violation → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	user.ID = r.ids.Generate()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	// create user in db
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil && r.db.errorClassificator.IsUniqueViolation(err) {
		// pgx may defer the constraint error until the row is read
		return models.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", NormalizeEmail(email))
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "user_id", userID)
}

// findUser returns the single user whose column equals value, or
// [ErrUserNotFound].
func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.findUser", query, args)
}

// UpdateProfilePic sets profile_pic and bumps updated_at.
func (r *userRepository) UpdateProfilePic(ctx context.Context, userID, profilePicURL string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateProfilePicQuery(userID, profilePicURL, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfilePic").Msg("error building query")
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.UpdateProfilePic", query, args)
}

func (r *userRepository) queryUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user, err := scanUser(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// dbTime scans a timestamp column. SQLite may hand back TEXT instead of a
// time.Time (RETURNING columns carry no declared type), so both are accepted.
type dbTime struct {
	t *time.Time
}

func (d dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d.t = v
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d.t = time.Time{}
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}

	return nil
}

func (d dbTime) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*d.t = t
			return nil
		}
	}

	return fmt.Errorf("unparsable timestamp %q", s)
}

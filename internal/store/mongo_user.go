package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/models"
)

// userDocument is the BSON shape of a user in the "users" collection.
type userDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	FullName     string        `bson:"full_name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	ProfilePic   *string       `bson:"profile_pic"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

func newUserDocument(user models.User) userDocument {
	return userDocument{
		FullName:     user.FullName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		ProfilePic:   user.ProfilePic,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		ProfilePic:   d.ProfilePic,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// userCollection is the subset of collection operations the repository
// needs. [mongoUserCollection] adapts *mongo.Collection to it.
type userCollection interface {
	insertOne(ctx context.Context, doc userDocument) error
	findOne(ctx context.Context, filter bson.D) (userDocument, error)
	findOneAndUpdate(ctx context.Context, filter, update bson.D) (userDocument, error)
}

// mongoUserRepository is the MongoDB implementation of [UserRepository].
// Email uniqueness is enforced by the unique index created by
// [MongoDB.EnsureIndexes].
type mongoUserRepository struct {
	collection userCollection
	now        func() time.Time
}

func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		collection: &mongoUserCollection{c: db.users()},
		now:        time.Now,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := newUserDocument(user)
	doc.ID = bson.NewObjectID()

	if err := r.collection.insertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug().Str("func", "*mongoUserRepository.CreateUser").Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.find(ctx, bson.D{{Key: "email", Value: NormalizeEmail(email)}})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		// not an id this store could have issued
		return models.User{}, ErrUserNotFound
	}

	return r.find(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoUserRepository) UpdateProfilePic(ctx context.Context, userID, profilePicURL string) (models.User, error) {
	log := logger.FromContext(ctx)

	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "profile_pic", Value: profilePicURL},
		{Key: "updated_at", Value: r.now().UTC()},
	}}}

	doc, err := r.collection.findOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*mongoUserRepository.UpdateProfilePic").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) find(ctx context.Context, filter bson.D) (models.User, error) {
	log := logger.FromContext(ctx)

	doc, err := r.collection.findOne(ctx, filter)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*mongoUserRepository.find").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/models"
)

// MongoDB is a connected MongoDB client bound to one database.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	// ping database
	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Name),
		logger:   log,
	}, nil
}

func (m *MongoDB) users() *mongo.Collection {
	return m.database.Collection(models.User{}.TableName())
}

// EnsureIndexes creates the unique email index on the users collection.
// It is idempotent.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_key"),
	}

	if _, err := m.users().Indexes().CreateOne(ctx, model); err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.EnsureIndexes").Msg("error creating email index")
		return fmt.Errorf("%w: %w", ErrMigrating, err)
	}

	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mongoUserCollection adapts *mongo.Collection to [userCollection].
type mongoUserCollection struct {
	c *mongo.Collection
}

func (m *mongoUserCollection) insertOne(ctx context.Context, doc userDocument) error {
	_, err := m.c.InsertOne(ctx, doc)
	return err
}

func (m *mongoUserCollection) findOne(ctx context.Context, filter bson.D) (userDocument, error) {
	var doc userDocument
	err := m.c.FindOne(ctx, filter).Decode(&doc)
	return doc, err
}

func (m *mongoUserCollection) findOneAndUpdate(ctx context.Context, filter, update bson.D) (userDocument, error) {
	var doc userDocument
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	return doc, err
}

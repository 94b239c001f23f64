package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

const (
	categoriesCollection = "category"
	usersCollection      = "users"
)

// CategoryStore is the read-only MongoDB view of users and their categories.
type CategoryStore struct {
	database *mongo.Database
}

func NewCategoryStore(database *mongo.Database) *CategoryStore {
	store := &CategoryStore{database: database}
	store.ensureIndexes()
	return store
}

func (s *CategoryStore) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.database.Collection(categoriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_uuid", Value: 1}},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create index for category collection")
	}
}

// UserExists reports whether a user document with the given uuid exists.
func (s *CategoryStore) UserExists(ctx context.Context, userID string) (bool, error) {
	count, err := s.database.Collection(usersCollection).CountDocuments(
		ctx,
		bson.M{"uuid": userID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("failed to look up user %q: %w", userID, err)
	}
	return count > 0, nil
}

// CategoriesForUser returns the user's categories in insertion order.
// Documents may carry a precomputed name embedding; callers embed the name
// themselves when the field is absent.
func (s *CategoryStore) CategoriesForUser(ctx context.Context, userID string) ([]domain.Category, error) {
	cursor, err := s.database.Collection(categoriesCollection).Find(ctx, bson.M{"user_uuid": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for user %q: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories for user %q: %w", userID, err)
	}
	return categories, nil
}

// Connect dials MongoDB and returns the default database of the connection
// string.
func Connect(ctx context.Context, uri string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client.Database(databaseName(uri)), nil
}

// databaseName extracts the database from the connection string path,
// defaulting to "jugger".
func databaseName(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "jugger"
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return "jugger"
	}
	return name
}

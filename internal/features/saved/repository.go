package saved

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles the saved_movies collection.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures the unique compound
// index that enforces at most one record per (user, movie) pair.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("saved_movies")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "movieId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts the join record. Saving a movie twice is idempotent;
// the unique index absorbs the race two concurrent toggles would cause.
func (r *Repository) Create(ctx context.Context, record *SavedMovie) error {
	record.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}

// Delete removes exactly the (user, movie) record; other users' records
// are untouched. Removing a record that is already gone is not an error.
func (r *Repository) Delete(ctx context.Context, userID string, movieID int) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{
		"userId":  userID,
		"movieId": movieID,
	})
	return err
}

// Exists reports whether the user has saved the movie.
func (r *Repository) Exists(ctx context.Context, userID string, movieID int) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"userId":  userID,
		"movieId": movieID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns the user's saved movies, most recent first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]SavedMovie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []SavedMovie
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []SavedMovie{}
	}
	return records, nil
}

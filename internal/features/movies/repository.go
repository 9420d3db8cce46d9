package movies

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles the search_counts collection.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("search_counts")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "searchTerm", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "count", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// BumpSearchCount increments the term's count, creating the row with the
// first result's denormalized fields when the term is new. A single
// atomic upsert, so concurrent identical searches neither undercount nor
// create duplicate rows.
func (r *Repository) BumpSearchCount(ctx context.Context, term string, movieID int, title, posterURL string) error {
	filter := bson.M{"searchTerm": term}
	update := bson.M{
		"$inc": bson.M{"count": 1},
		"$setOnInsert": bson.M{
			"searchTerm": term,
			"movieId":    movieID,
			"title":      title,
			"posterUrl":  posterURL,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated SearchCount
	return r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
}

// Trending returns the most-searched terms' movies, highest count first.
func (r *Repository) Trending(ctx context.Context, limit int) ([]SearchCount, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "count", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []SearchCount
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SearchCount{}
	}
	return rows, nil
}

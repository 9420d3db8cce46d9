package movies

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/movira-app/movira-api/internal/tmdb"
)

// SearchCount aggregates how often a term has been searched, with
// denormalized display fields of the term's top-matching movie. One row
// per distinct term; count only increases.
type SearchCount struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SearchTerm string             `bson:"searchTerm" json:"searchTerm"`
	Count      int                `bson:"count" json:"count"`
	MovieID    int                `bson:"movieId" json:"movieId"`
	Title      string             `bson:"title" json:"title"`
	PosterURL  string             `bson:"posterUrl" json:"posterUrl"`
}

// SearchResponse wraps catalog results for a term.
type SearchResponse struct {
	Query   string      `json:"query"`
	Results []tmdb.Movie `json:"results"`
}

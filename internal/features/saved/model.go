package saved

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedMovie is the join record between a user and a movie, carrying
// denormalized display fields so the saved list renders without a
// catalog round trip.
type SavedMovie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	MovieID     int                `bson:"movieId" json:"movieId"`
	Title       string             `bson:"title" json:"title"`
	PosterPath  string             `bson:"posterPath" json:"posterPath"`
	VoteAverage float64            `bson:"voteAverage" json:"voteAverage"`
	ReleaseDate string             `bson:"releaseDate" json:"releaseDate"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ToggleRequest for POST /movies/:id/save.
type ToggleRequest struct {
	Action string `json:"action" binding:"required,oneof=save unsave"`
}

// ToggleResponse after save/unsave.
type ToggleResponse struct {
	IsSaved bool `json:"isSaved"`
}

// StatusResponse initializes the detail screen's toggle state.
type StatusResponse struct {
	IsSaved bool `json:"isSaved"`
}

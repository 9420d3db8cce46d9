package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRepository handles the sessions collection. Expired documents
// are reaped by a TTL index.
type SessionRepository struct {
	sessions *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	sessions := db.Collection("sessions")

	_, _ = sessions.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
		{
			Keys: bson.D{{Key: "accountId", Value: 1}},
		},
	})

	return &SessionRepository{sessions: sessions}
}

// Create opens a new session for an account.
func (r *SessionRepository) Create(ctx context.Context, accountID, email string, ttl time.Duration) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Email:     email,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	if _, err := r.sessions.InsertOne(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session for an id; nil when it no longer exists or has
// lapsed but the TTL monitor has not reaped it yet.
func (r *SessionRepository) Get(ctx context.Context, id string) (*Session, error) {
	var session Session
	err := r.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return &session, nil
}

// Delete destroys a session. Destroying a session that is already gone
// is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.sessions.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

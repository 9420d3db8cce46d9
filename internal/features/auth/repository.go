package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/movira-app/movira-api/internal/pkg/apperr"
)

// Repository handles the accounts and users collections.
type Repository struct {
	accounts *mongo.Collection
	users    *mongo.Collection
}

// NewRepository initializes the repository and creates the uniqueness
// indexes sign-up relies on.
func NewRepository(db *mongo.Database) *Repository {
	accounts := db.Collection("accounts")
	users := db.Collection("users")

	_, _ = accounts.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "accountId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	_, _ = users.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "accountId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return &Repository{accounts: accounts, users: users}
}

// CreateAccount inserts the credential object.
func (r *Repository) CreateAccount(ctx context.Context, account *Account) error {
	account.CreatedAt = time.Now()

	result, err := r.accounts.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Wrap(apperr.KindDuplicateIdentity,
				"A user with this email or username already exists.", err)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

// AccountByEmail finds a credential object; nil when absent.
func (r *Repository) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := r.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// CreateUser inserts the linked profile document.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Wrap(apperr.KindDuplicateIdentity,
				"A user with this email or username already exists.", err)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// UserByAccountID resolves the active session's linked profile document.
// Returns nil, not an error, when the lookup yields zero rows.
func (r *Repository) UserByAccountID(ctx context.Context, accountID string) (*User, error) {
	var user User
	err := r.users.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser sets the given fields on a profile document and returns the
// merged result.
func (r *Repository) UpdateUser(ctx context.Context, accountID string, updates map[string]interface{}) (*User, error) {
	updates["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err := r.users.FindOneAndUpdate(ctx,
		bson.M{"accountId": accountID},
		bson.M{"$set": updates},
		opts,
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.KindDataUnavailable, "Failed to get user data.")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindDuplicateIdentity,
				"A user with this email or username already exists.", err)
		}
		return nil, err
	}
	return &user, nil
}

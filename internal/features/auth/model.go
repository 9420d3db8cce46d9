package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the credential object created on sign-up. It is linked to
// exactly one User profile document through AccountID.
type Account struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AccountID string             `bson:"accountId" json:"accountId"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// User is the profile document behind every screen. Avatar is either an
// uploaded file URL or a generated-initials URL.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID string             `bson:"accountId" json:"accountId"`
	Email     string             `bson:"email" json:"email"`
	Username  string             `bson:"username" json:"username"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Country   string             `bson:"country,omitempty" json:"country,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Session is the server-side handle a token points at. Logout deletes it,
// which revokes the token ahead of its JWT expiry.
type Session struct {
	ID        string    `bson:"_id" json:"id"`
	AccountID string    `bson:"accountId" json:"accountId"`
	Email     string    `bson:"email" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// RegisterRequest is the sign-up form payload. Phone is the local number;
// the calling code is derived from the selected country.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
}

// LoginRequest is the sign-in form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful sign-up or sign-in.
type AuthResponse struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Token   string   `json:"token"`
}

// MeResponse carries the current-user resolution; User is null when
// unauthenticated, which is not an error.
type MeResponse struct {
	User     *User `json:"user"`
	IsLogged bool  `json:"isLogged"`
}

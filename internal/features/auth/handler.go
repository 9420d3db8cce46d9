package auth

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/movira-app/movira-api/internal/config"
	"github.com/movira-app/movira-api/internal/pkg/avatar"
	"github.com/movira-app/movira-api/internal/pkg/countries"
	"github.com/movira-app/movira-api/internal/pkg/response"
	"github.com/movira-app/movira-api/internal/pkg/token"
)

// AccountStore is the slice of Repository the handlers need; tests plug
// in fakes to assert nothing reaches the backend on invalid input.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *Account) error
	AccountByEmail(ctx context.Context, email string) (*Account, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	UserByAccountID(ctx context.Context, accountID string) (*User, error)
}

type SessionStore interface {
	Create(ctx context.Context, accountID, email string, ttl time.Duration) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	accounts AccountStore
	users    UserStore
	sessions SessionStore
	cfg      *config.Config
}

func NewHandler(accounts AccountStore, users UserStore, sessions SessionStore, cfg *config.Config) *Handler {
	return &Handler{
		accounts: accounts,
		users:    users,
		sessions: sessions,
		cfg:      cfg,
	}
}

func (h *Handler) sessionTTL() time.Duration {
	return time.Duration(h.cfg.JWTExpireHours) * time.Hour
}

// Register godoc
// @Summary Sign up
// @Description Create an account, open a session and create the linked profile document
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Sign-up form"
// @Success 201 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if fields := ValidateRegister(&req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to create account. Please try again.", "HASH_FAILED")
		return
	}

	ctx := c.Request.Context()

	account := &Account{
		AccountID: uuid.NewString(),
		Email:     req.Email,
		Password:  string(hashedPassword),
		Name:      req.Username,
	}
	if err := h.accounts.CreateAccount(ctx, account); err != nil {
		response.FromError(c, err)
		return
	}

	// Sign the fresh account in right away, matching the sign-up flow.
	session, err := h.sessions.Create(ctx, account.AccountID, account.Email, h.sessionTTL())
	if err != nil {
		response.FromError(c, err)
		return
	}

	user := &User{
		AccountID: account.AccountID,
		Email:     req.Email,
		Username:  req.Username,
		Avatar:    avatar.InitialsURL(req.Username),
		Phone:     countries.JoinPhone(countries.CallingCode(req.Country), req.Phone),
		Country:   req.Country,
	}
	if err := h.users.CreateUser(ctx, user); err != nil {
		response.FromError(c, err)
		return
	}

	tokenString, err := token.GenerateToken(account.AccountID, session.ID, account.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to create account. Please try again.", "TOKEN_FAILED")
		return
	}

	response.Created(c, AuthResponse{
		User:    user,
		Session: session,
		Token:   tokenString,
	})
}

// Login godoc
// @Summary Sign in
// @Description Open a session; if the caller already holds a live session it is returned unchanged
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Sign-in form"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if fields := ValidateLogin(&req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	ctx := c.Request.Context()

	// Idempotent w.r.t. an already-authenticated caller: a presented
	// token whose session still exists wins over the credentials.
	if tokenString := bearerToken(c); tokenString != "" {
		if claims, err := token.ValidateToken(tokenString); err == nil {
			if session, err := h.sessions.Get(ctx, claims.SessionID); err == nil && session != nil {
				h.respondWithSession(c, session, tokenString)
				return
			}
		}
	}

	account, err := h.accounts.AccountByEmail(ctx, req.Email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if account == nil {
		response.Unauthorized(c, "Incorrect email or password.", "BAD_CREDENTIALS")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Incorrect email or password.", "BAD_CREDENTIALS")
		return
	}

	session, err := h.sessions.Create(ctx, account.AccountID, account.Email, h.sessionTTL())
	if err != nil {
		response.FromError(c, err)
		return
	}

	tokenString, err := token.GenerateToken(account.AccountID, session.ID, account.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to sign in. Please try again.", "TOKEN_FAILED")
		return
	}

	h.respondWithSession(c, session, tokenString)
}

// respondWithSession resolves the session's linked profile document. A
// null resolution after authentication is DataUnavailable, distinct from
// bad credentials.
func (h *Handler) respondWithSession(c *gin.Context, session *Session, tokenString string) {
	user, err := h.users.UserByAccountID(c.Request.Context(), session.AccountID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if user == nil {
		response.NotFound(c,
			"Failed to get user data. Please check your internet connection or database permissions.",
			"DATA_UNAVAILABLE")
		return
	}

	response.Success(c, AuthResponse{
		User:    user,
		Session: session,
		Token:   tokenString,
	})
}

// Logout godoc
// @Summary Sign out
// @Description Destroy the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	session := CurrentSession(c)
	if session == nil {
		response.Unauthorized(c, "You must be logged in.", "NOT_AUTHENTICATED")
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), session.ID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"loggedOut": true})
}

// Me godoc
// @Summary Current user
// @Description Resolve the active session's linked profile; user is null when unauthenticated
// @Tags auth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=MeResponse}
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := CurrentUser(c)

	response.Success(c, MeResponse{
		User:     user,
		IsLogged: user != nil,
	})
}

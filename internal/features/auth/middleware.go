package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/movira-app/movira-api/internal/pkg/response"
	"github.com/movira-app/movira-api/internal/pkg/token"
)

const (
	ctxUserKey    = "user"
	ctxSessionKey = "session"
)

// Middleware resolves the caller's session and profile and injects them
// into the request context. Requests without a live session are
// rejected.
func Middleware(sessions SessionStore, users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolve(c, sessions, users) {
			response.Unauthorized(c, "You must be logged in to do that.", "NOT_AUTHENTICATED")
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalMiddleware is the request-scoped analogue of the app's global
// session state: it resolves {user, isLogged} once per request and never
// rejects. Unauthenticated callers simply see a null user.
func OptionalMiddleware(sessions SessionStore, users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolve(c, sessions, users)
		c.Next()
	}
}

func resolve(c *gin.Context, sessions SessionStore, users UserStore) bool {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return false
	}

	claims, err := token.ValidateToken(tokenString)
	if err != nil {
		return false
	}

	ctx := c.Request.Context()

	session, err := sessions.Get(ctx, claims.SessionID)
	if err != nil || session == nil {
		return false
	}

	user, err := users.UserByAccountID(ctx, session.AccountID)
	if err != nil || user == nil {
		return false
	}

	c.Set(ctxSessionKey, session)
	c.Set(ctxUserKey, user)
	return true
}

// CurrentUser returns the resolved profile, nil when unauthenticated.
func CurrentUser(c *gin.Context) *User {
	if val, exists := c.Get(ctxUserKey); exists {
		if user, ok := val.(*User); ok {
			return user
		}
	}
	return nil
}

// CurrentSession returns the resolved session, nil when unauthenticated.
func CurrentSession(c *gin.Context) *Session {
	if val, exists := c.Get(ctxSessionKey); exists {
		if session, ok := val.(*Session); ok {
			return session
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	fields := strings.Fields(authHeader)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1]
	}
	return authHeader
}

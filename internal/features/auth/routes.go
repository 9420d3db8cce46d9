package auth

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movira-app/movira-api/internal/config"
)

// RegisterRoutes registers the sign-up/sign-in/session routes.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	sessionRepo := NewSessionRepository(db)

	handler := NewHandler(repo, repo, sessionRepo, cfg)

	requireAuth := Middleware(sessionRepo, repo)
	optionalAuth := OptionalMiddleware(sessionRepo, repo)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/logout", requireAuth, handler.Logout)
		authGroup.GET("/me", optionalAuth, handler.Me)
	}
}

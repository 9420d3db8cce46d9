package saved

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movira-app/movira-api/internal/config"
	"github.com/movira-app/movira-api/internal/features/auth"
	"github.com/movira-app/movira-api/internal/tmdb"
)

// RegisterRoutes registers the saved-movie routes.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	authRepo := auth.NewRepository(db)
	sessionRepo := auth.NewSessionRepository(db)
	catalog := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBToken, cfg.ImageBaseURL)

	handler := NewHandler(repo, catalog)

	requireAuth := auth.Middleware(sessionRepo, authRepo)

	moviesGroup := router.Group("/movies")
	{
		moviesGroup.GET("/:id/saved", requireAuth, handler.Status)
		moviesGroup.POST("/:id/save", requireAuth, handler.Toggle)
	}

	router.GET("/saved", requireAuth, handler.List)
}

package movies

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movira-app/movira-api/internal/config"
	"github.com/movira-app/movira-api/internal/tmdb"
)

// RegisterRoutes registers the movie discovery routes. Search, trending
// and details are public; the client gates them behind its own session
// handling, not the API.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	catalog := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBToken, cfg.ImageBaseURL)

	handler := NewHandler(repo, catalog)

	moviesGroup := router.Group("/movies")
	{
		moviesGroup.GET("/search", handler.Search)
		moviesGroup.GET("/trending", handler.Trending)
		moviesGroup.GET("/:id", handler.Details)
	}
}

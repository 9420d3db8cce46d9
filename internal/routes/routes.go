package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movira-app/movira-api/internal/config"
	"github.com/movira-app/movira-api/internal/features/auth"
	"github.com/movira-app/movira-api/internal/features/movies"
	"github.com/movira-app/movira-api/internal/features/profile"
	"github.com/movira-app/movira-api/internal/features/saved"
)

// SetupRoutes wires every feature under /api/v1.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, db, cfg)
	profile.RegisterRoutes(api, db, cfg)
	movies.RegisterRoutes(api, db, cfg)
	saved.RegisterRoutes(api, db, cfg)
}

package profile

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movira-app/movira-api/internal/config"
	"github.com/movira-app/movira-api/internal/features/auth"
	"github.com/movira-app/movira-api/internal/pkg/cloudinary"
)

// RegisterRoutes registers the profile edit routes.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	authRepo := auth.NewRepository(db)
	sessionRepo := auth.NewSessionRepository(db)

	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
	if err != nil {
		log.Printf("Failed to initialize cloudinary service for profile: %v", err)
	}

	handler := NewHandler(authRepo, cld)

	requireAuth := auth.Middleware(sessionRepo, authRepo)

	// Selector data feeds the sign-up form, so no auth.
	router.GET("/countries", handler.Countries)

	profileGroup := router.Group("/profile")
	profileGroup.Use(requireAuth)
	{
		profileGroup.GET("/form", handler.GetForm)
		profileGroup.PUT("", handler.Update)
	}
}

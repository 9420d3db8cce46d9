package profile

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/movira-app/movira-api/internal/features/auth"
	"github.com/movira-app/movira-api/internal/pkg/cloudinary"
	"github.com/movira-app/movira-api/internal/pkg/countries"
	"github.com/movira-app/movira-api/internal/pkg/response"
)

// Store is the profile-document slice of auth.Repository.
type Store interface {
	UpdateUser(ctx context.Context, accountID string, updates map[string]interface{}) (*auth.User, error)
}

// Uploader is the file-storage surface the save flow needs.
type Uploader interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (*cloudinary.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type Handler struct {
	store    Store
	uploader Uploader
}

func NewHandler(store Store, uploader Uploader) *Handler {
	return &Handler{
		store:    store,
		uploader: uploader,
	}
}

// GetForm godoc
// @Summary Profile edit seed
// @Description Current profile with the calling code split off the stored phone
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=Form}
// @Failure 401 {object} response.ErrorResponse
// @Router /profile/form [get]
func (h *Handler) GetForm(c *gin.Context) {
	user := auth.CurrentUser(c)

	code, local := countries.SplitPhone(user.Phone, user.Country)

	response.Success(c, Form{
		Username:    user.Username,
		Email:       user.Email,
		Avatar:      user.Avatar,
		CountryCode: code,
		Phone:       local,
		Country:     user.Country,
		Bio:         user.Bio,
	})
}

// Countries godoc
// @Summary Country selector data
// @Description Countries with ISO codes and calling codes for the sign-up and profile forms
// @Tags profile
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /countries [get]
func (h *Handler) Countries(c *gin.Context) {
	response.Success(c, countries.All())
}

// Update godoc
// @Summary Save profile
// @Description Update profile fields; an attached avatar image replaces the stored one
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param username formData string false "Username"
// @Param phone formData string false "Local phone number"
// @Param country formData string false "Country name"
// @Param bio formData string false "Bio"
// @Param avatar formData file false "New avatar image"
// @Success 200 {object} response.SuccessResponse{data=auth.User}
// @Failure 401 {object} response.ErrorResponse
// @Router /profile [put]
func (h *Handler) Update(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_FORM")
		return
	}

	ctx := c.Request.Context()

	avatarURL := user.Avatar
	if file, header, err := c.Request.FormFile("avatar"); err == nil {
		defer file.Close()

		if err := cloudinary.ValidateImageFile(header); err != nil {
			response.BadRequest(c, err.Error(), "INVALID_FILE")
			return
		}

		result, err := h.uploader.UploadImage(ctx, file, header.Filename)
		if err != nil {
			response.InternalServerError(c, "Failed to update profile", "UPLOAD_FAILED")
			return
		}
		avatarURL = result.URL

		// Best-effort cleanup of the previous avatar, but only when it
		// was itself a file stored on this backend. Failures must not
		// block the save.
		if user.Avatar != "" && cloudinary.IsHostedURL(user.Avatar) && avatarURL != user.Avatar {
			if publicID := cloudinary.PublicIDFromURL(user.Avatar); publicID != "" {
				if err := h.uploader.Delete(ctx, publicID); err != nil {
					log.Printf("Error deleting old avatar %s: %v", publicID, err)
				}
			}
		}
	}

	fullPhone := countries.JoinPhone(countries.CallingCode(req.Country), req.Phone)

	updated, err := h.store.UpdateUser(ctx, user.AccountID, map[string]interface{}{
		"username": req.Username,
		"phone":    fullPhone,
		"country":  req.Country,
		"bio":      req.Bio,
		"avatar":   avatarURL,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, updated)
}

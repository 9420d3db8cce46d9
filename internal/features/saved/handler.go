package saved

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/movira-app/movira-api/internal/features/auth"
	"github.com/movira-app/movira-api/internal/pkg/response"
	"github.com/movira-app/movira-api/internal/tmdb"
)

// Store is the slice of Repository the handlers need.
type Store interface {
	Create(ctx context.Context, record *SavedMovie) error
	Delete(ctx context.Context, userID string, movieID int) error
	Exists(ctx context.Context, userID string, movieID int) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]SavedMovie, error)
}

// Catalog fetches the movie whose fields populate a new join record.
type Catalog interface {
	MovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error)
}

type Handler struct {
	store   Store
	catalog Catalog
}

func NewHandler(store Store, catalog Catalog) *Handler {
	return &Handler{
		store:   store,
		catalog: catalog,
	}
}

// Status godoc
// @Summary Saved status
// @Description Whether the current user has saved the movie; seeds the detail screen toggle
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} response.SuccessResponse{data=StatusResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /movies/{id}/saved [get]
func (h *Handler) Status(c *gin.Context) {
	user := auth.CurrentUser(c)

	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID <= 0 {
		response.BadRequest(c, "Invalid movie ID", "INVALID_ID")
		return
	}

	isSaved, err := h.store.Exists(c.Request.Context(), user.AccountID, movieID)
	if err != nil {
		response.InternalServerError(c, "Failed to check saved status", "STATUS_CHECK_FAILED")
		return
	}

	response.Success(c, StatusResponse{IsSaved: isSaved})
}

// Toggle godoc
// @Summary Save or unsave movie
// @Description Create or remove the (user, movie) join record
// @Tags saved
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param request body ToggleRequest true "Toggle action"
// @Success 200 {object} response.SuccessResponse{data=ToggleResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /movies/{id}/save [post]
func (h *Handler) Toggle(c *gin.Context) {
	user := auth.CurrentUser(c)

	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID <= 0 {
		response.BadRequest(c, "Invalid movie ID", "INVALID_ID")
		return
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Action must be save or unsave", "INVALID_ACTION")
		return
	}

	ctx := c.Request.Context()

	if req.Action == "unsave" {
		if err := h.store.Delete(ctx, user.AccountID, movieID); err != nil {
			response.InternalServerError(c, "Failed to save movie", "UNSAVE_FAILED")
			return
		}
		response.Success(c, ToggleResponse{IsSaved: false})
		return
	}

	movie, err := h.catalog.MovieDetails(ctx, movieID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	record := &SavedMovie{
		UserID:      user.AccountID,
		MovieID:     movie.ID,
		Title:       movie.Title,
		PosterPath:  movie.PosterPath,
		VoteAverage: movie.VoteAverage,
		ReleaseDate: movie.ReleaseDate,
	}
	if err := h.store.Create(ctx, record); err != nil {
		response.InternalServerError(c, "Failed to save movie", "SAVE_FAILED")
		return
	}

	response.Success(c, ToggleResponse{IsSaved: true})
}

// List godoc
// @Summary Saved movies
// @Description The current user's saved movies, most recent first
// @Tags saved
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=[]SavedMovie}
// @Failure 401 {object} response.ErrorResponse
// @Router /saved [get]
func (h *Handler) List(c *gin.Context) {
	user := auth.CurrentUser(c)

	records, err := h.store.ListByUser(c.Request.Context(), user.AccountID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch saved movies", "FETCH_FAILED")
		return
	}

	response.Success(c, records)
}

package movies

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/movira-app/movira-api/internal/pkg/response"
	"github.com/movira-app/movira-api/internal/tmdb"
)

// Store is the slice of Repository the handlers need.
type Store interface {
	BumpSearchCount(ctx context.Context, term string, movieID int, title, posterURL string) error
	Trending(ctx context.Context, limit int) ([]SearchCount, error)
}

// Catalog is the upstream movie source.
type Catalog interface {
	SearchMovies(ctx context.Context, query string) ([]tmdb.Movie, error)
	MovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error)
	PosterURL(path string) string
}

// trendingLimit caps the trending carousel.
const trendingLimit = 5

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

// Search godoc
// @Summary Search movies
// @Description Search the catalog by title and record the term for trending
// @Tags movies
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} response.SuccessResponse{data=SearchResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /movies/search [get]
func (h *Handler) Search(c *gin.Context) {
	term, ok := NormalizeQuery(c.Query("q"))
	if !ok {
		response.BadRequest(c, "Search term is required", "EMPTY_QUERY")
		return
	}

	ctx := c.Request.Context()

	results, err := h.catalog.SearchMovies(ctx, term)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// Only searches that produced results count toward trending, and the
	// term's row carries the top hit's display fields. A failed bump must
	// not fail the search itself.
	if len(results) > 0 {
		top := results[0]
		posterURL := h.catalog.PosterURL(top.PosterPath)
		if err := h.store.BumpSearchCount(ctx, term, top.ID, top.Title, posterURL); err != nil {
			log.Printf("Error updating search count for %q: %v", term, err)
		}
	}

	response.Success(c, SearchResponse{Query: term, Results: results})
}

// Trending godoc
// @Summary Trending movies
// @Description The most-searched movies, highest search count first
// @Tags movies
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]SearchCount}
// @Failure 500 {object} response.ErrorResponse
// @Router /movies/trending [get]
func (h *Handler) Trending(c *gin.Context) {
	rows, err := h.store.Trending(c.Request.Context(), trendingLimit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch trending movies", "TRENDING_FAILED")
		return
	}

	response.Success(c, rows)
}

// Details godoc
// @Summary Movie details
// @Description Full detail record for a single movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} response.SuccessResponse{data=tmdb.MovieDetails}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /movies/{id} [get]
func (h *Handler) Details(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID <= 0 {
		response.BadRequest(c, "Invalid movie ID", "INVALID_ID")
		return
	}

	movie, err := h.catalog.MovieDetails(c.Request.Context(), movieID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, movie)
}

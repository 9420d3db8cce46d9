package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/movira-app/movira-api/internal/pkg/apperr"
)

func TestSearchMovies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/movie", r.URL.Path)
		require.Equal(t, "dune", r.URL.Query().Get("query"))
		require.Equal(t, "false", r.URL.Query().Get("include_adult"))
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 438631, "title": "Dune", "poster_path": "/dune.jpg", "vote_average": 7.8},
				{"id": 693134, "title": "Dune: Part Two", "poster_path": "/dune2.jpg", "vote_average": 8.2}
			],
			"total_pages": 1,
			"total_results": 2
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "https://img.example/w500")

	movies, err := client.SearchMovies(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	require.Equal(t, 438631, movies[0].ID)
	require.Equal(t, "Dune", movies[0].Title)
	require.Equal(t, "/dune.jpg", movies[0].PosterPath)
}

func TestSearchMoviesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code": 7, "status_message": "Invalid API key"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-token", "")

	_, err := client.SearchMovies(context.Background(), "dune")
	require.Error(t, err)
	require.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestSearchMoviesConnectivity(t *testing.T) {
	// Nothing listens here.
	client := NewClient("http://127.0.0.1:1", "token", "")

	_, err := client.SearchMovies(context.Background(), "dune")
	require.Error(t, err)
	require.Equal(t, apperr.KindConnectivity, apperr.KindOf(err))
}

func TestMovieDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/438631", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 438631,
			"title": "Dune",
			"runtime": 155,
			"vote_average": 7.8,
			"genres": [{"id": 878, "name": "Science Fiction"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "")

	movie, err := client.MovieDetails(context.Background(), 438631)
	require.NoError(t, err)
	require.Equal(t, "Dune", movie.Title)
	require.Equal(t, 155, movie.Runtime)
	require.Len(t, movie.Genres, 1)
}

func TestMovieDetailsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code": 34, "status_message": "The resource you requested could not be found."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", "")

	_, err := client.MovieDetails(context.Background(), 999999999)
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPosterURL(t *testing.T) {
	client := NewClient("https://api.example", "token", "https://img.example/w500")

	require.Equal(t, "https://img.example/w500/dune.jpg", client.PosterURL("/dune.jpg"))
	require.Equal(t, "", client.PosterURL(""))
}

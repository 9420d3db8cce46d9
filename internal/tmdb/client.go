// Package tmdb is the client for the external movie metadata API.
package tmdb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/movira-app/movira-api/internal/pkg/apperr"
)

type Client struct {
	http         *resty.Client
	imageBaseURL string
}

func NewClient(baseURL, bearerToken, imageBaseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json").
		SetAuthToken(bearerToken)

	return &Client{
		http:         httpClient,
		imageBaseURL: imageBaseURL,
	}
}

// SearchMovies queries the catalog for movies matching the given term,
// sorted by popularity.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	var result searchResponse
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":         query,
			"language":      "en-US",
			"include_adult": "false",
		}).
		SetResult(&result).
		SetError(&errBody).
		Get("/search/movie")
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConnectivity, "Please check your internet connection.", err)
	}
	if resp.IsError() {
		return nil, apperr.New(apperr.KindUpstream,
			fmt.Sprintf("movie search failed: %s", errBody.StatusMessage))
	}

	return result.Results, nil
}

// MovieDetails fetches the full record for a movie id.
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	var result MovieDetails
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.Itoa(id)).
		SetResult(&result).
		SetError(&errBody).
		Get("/movie/{id}")
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConnectivity, "Please check your internet connection.", err)
	}
	if resp.StatusCode() == 404 {
		return nil, apperr.New(apperr.KindNotFound, "Movie not found")
	}
	if resp.IsError() {
		return nil, apperr.New(apperr.KindUpstream,
			fmt.Sprintf("movie details failed: %s", errBody.StatusMessage))
	}

	return &result, nil
}

// PosterURL turns a relative poster/backdrop path into a full image URL.
// The catalog returns paths with a leading slash; empty paths stay empty.
func (c *Client) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + path
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/danielhkuo/movie-night/models"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

var ErrNotFound = errors.New("no TMDb match")

// Client is a minimal TMDb API client used for catalog enrichment.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Results []struct {
		ID int `json:"id"`
	} `json:"results"`
}

type detailsResponse struct {
	ID           int     `json:"id"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Runtime      *int    `json:"runtime"`
	ReleaseDate  *string `json:"release_date"`
	Tagline      *string `json:"tagline"`
	Genres       []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// Lookup searches TMDb for a movie by title and year and returns the full
// metadata of the best match. ErrNotFound means the search came up empty,
// which callers treat as "leave the movie unenriched".
func (c *Client) Lookup(ctx context.Context, title string, year int) (models.MovieMetadata, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", title)
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}

	var search searchResponse
	if err := c.get(ctx, "/search/movie", q, &search); err != nil {
		return models.MovieMetadata{}, err
	}
	if len(search.Results) == 0 {
		return models.MovieMetadata{}, ErrNotFound
	}

	dq := url.Values{}
	dq.Set("api_key", c.apiKey)

	var details detailsResponse
	path := "/movie/" + strconv.Itoa(search.Results[0].ID)
	if err := c.get(ctx, path, dq, &details); err != nil {
		return models.MovieMetadata{}, err
	}

	genres := make([]string, 0, len(details.Genres))
	for _, g := range details.Genres {
		genres = append(genres, g.Name)
	}

	return models.MovieMetadata{
		TMDBID:       &details.ID,
		Overview:     details.Overview,
		PosterPath:   details.PosterPath,
		BackdropPath: details.BackdropPath,
		VoteAverage:  details.VoteAverage,
		VoteCount:    details.VoteCount,
		Runtime:      details.Runtime,
		Genres:       genres,
		ReleaseDate:  details.ReleaseDate,
		Tagline:      details.Tagline,
		FetchedAt:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build TMDb request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("TMDb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDb returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode TMDb response: %w", err)
	}

	return nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CastVoteRequest struct {
	MovieID     string `json:"movieId"`
	ScreeningID string `json:"screeningId"`
}

type SuggestionRequest struct {
	Title       string `json:"title"`
	Year        int    `json:"year,omitempty"`
	ScreeningID string `json:"screeningId"`
}

// Response types

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type VoteResponse struct {
	Vote *Vote `json:"vote"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ScreeningResponse struct {
	Screening *ScreeningView `json:"screening"`
}

type ScreeningsResponse struct {
	Screenings []ScreeningView `json:"screenings"`
}

type SuggestionResponse struct {
	Suggestion MovieSuggestion `json:"suggestion"`
}

type SuggestionsResponse struct {
	Suggestions []MovieSuggestion `json:"suggestions"`
}

// Domain types

// MovieMetadata carries optional enrichment fetched from TMDb. It lives
// inside the catalog file and is passed through to clients untouched.
type MovieMetadata struct {
	TMDBID       *int     `json:"tmdb_id"`
	Overview     string   `json:"overview"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
	VoteAverage  float64  `json:"vote_average"`
	VoteCount    int      `json:"vote_count"`
	Runtime      *int     `json:"runtime"`
	Genres       []string `json:"genres"`
	ReleaseDate  *string  `json:"release_date"`
	Tagline      *string  `json:"tagline"`
	FetchedAt    string   `json:"fetched_at"`
}

// Movie is one candidate on a screening's ballot, as stored in the catalog.
type Movie struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Year     int            `json:"year"`
	Metadata *MovieMetadata `json:"metadata,omitempty"`
}

// Screening is a scheduled movie night with a fixed candidate list.
// Screenings are defined by the catalog file and never mutated by voting.
type Screening struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Theme  string    `json:"theme,omitempty"`
	Movies []Movie   `json:"movies"`
}

// MovieView is a Movie annotated with its current vote tally and voters.
type MovieView struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Year     int            `json:"year"`
	Metadata *MovieMetadata `json:"metadata,omitempty"`
	Votes    int            `json:"votes"`
	Voters   []User         `json:"voters"`
}

// ScreeningView is the aggregated shape returned by the movies endpoints.
type ScreeningView struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date"`
	Theme        string      `json:"theme,omitempty"`
	VotingClosed bool        `json:"voting_closed"`
	Movies       []MovieView `json:"movies"`
	MyVote       *Vote       `json:"my_vote,omitempty"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Vote is one user's single current choice for a screening. At most one
// row exists per (user, screening); re-voting replaces the movie choice.
type Vote struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	MovieID     string    `json:"movieId"`
	ScreeningID string    `json:"screeningId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MovieSuggestion is a user-submitted proposal, distinct from a vote.
// Year is 0 when the suggester didn't provide one.
type MovieSuggestion struct {
	ID          string    `json:"id"`
	ScreeningID string    `json:"screeningId"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Year        int       `json:"year,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	SuggestedBy string    `json:"suggestedBy"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

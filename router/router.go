// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/handlers"
	"github.com/danielhkuo/movie-night/middleware"
)

func NewRouter(db *sql.DB, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	movieHandler := handlers.NewMovieHandler(db, cat, cfg)
	voteHandler := handlers.NewVoteHandler(db, cat, cfg)
	suggestionHandler := handlers.NewSuggestionHandler(db, cat, cfg)

	// protected wires auth then logging around a handler
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(cfg.JWTSecret, middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth (public)
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/me", protected(authHandler.Me))

	// Screenings (aggregated views)
	mux.HandleFunc("GET /movies/next-screening", protected(movieHandler.NextScreening))
	mux.HandleFunc("GET /movies/screening/{id}", protected(movieHandler.GetScreening))
	mux.HandleFunc("GET /movies/screenings", protected(movieHandler.ListScreenings))

	// Votes
	mux.HandleFunc("POST /votes", protected(voteHandler.CastVote))
	mux.HandleFunc("GET /votes/my-vote/{screeningId}", protected(voteHandler.MyVote))
	mux.HandleFunc("DELETE /votes/{screeningId}", protected(voteHandler.CancelVote))
	mux.HandleFunc("DELETE /votes/admin/clear/{screeningId}", protected(voteHandler.ClearScreening))

	// Suggestions
	mux.HandleFunc("POST /suggestions", protected(suggestionHandler.CreateSuggestion))
	mux.HandleFunc("GET /suggestions/screening/{screeningId}", protected(suggestionHandler.ListSuggestions))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("movie-night API v1"))
	})

	return mux
}

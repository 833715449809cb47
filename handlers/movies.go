// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type MovieHandler struct {
	db      *sql.DB
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewMovieHandler(db *sql.DB, cat *catalog.Catalog, cfg cliparse.Config) *MovieHandler {
	return &MovieHandler{db: db, catalog: cat, cfg: cfg}
}

// NextScreening handles GET /movies/next-screening
// Returns the aggregated view of the screening a client should see by
// default, or {"screening": null} when the catalog has nothing to show.
func (h *MovieHandler) NextScreening(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	s, ok := h.catalog.Current(now)
	if !ok {
		middleware.JSONResponse(w, http.StatusOK, models.ScreeningResponse{Screening: nil})
		return
	}

	view, err := buildScreeningView(h.db, s, now)
	if err != nil {
		slog.Error("failed to build screening view", "error", err, "screening_id", s.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch screening")
		return
	}

	if err := attachMyVote(h.db, &view, middleware.UserID(r)); err != nil {
		slog.Error("failed to fetch caller vote", "error", err, "screening_id", s.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch screening")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScreeningResponse{Screening: &view})
}

// GetScreening handles GET /movies/screening/:id
func (h *MovieHandler) GetScreening(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "screening id is required")
		return
	}

	s, ok := h.catalog.GetByID(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Screening not found")
		return
	}

	now := time.Now()
	view, err := buildScreeningView(h.db, s, now)
	if err != nil {
		slog.Error("failed to build screening view", "error", err, "screening_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch screening")
		return
	}

	if err := attachMyVote(h.db, &view, middleware.UserID(r)); err != nil {
		slog.Error("failed to fetch caller vote", "error", err, "screening_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch screening")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScreeningResponse{Screening: &view})
}

// ListScreenings handles GET /movies/screenings
// Returns the aggregated view of every screening in the catalog, each
// with its movies ranked by current vote count.
func (h *MovieHandler) ListScreenings(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	screenings := h.catalog.GetAll()
	views := make([]models.ScreeningView, 0, len(screenings))
	for _, s := range screenings {
		view, err := buildScreeningView(h.db, s, now)
		if err != nil {
			slog.Error("failed to build screening view", "error", err, "screening_id", s.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch screenings")
			return
		}
		sortByVotes(view.Movies)
		views = append(views, view)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScreeningsResponse{Screenings: views})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/db"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

const maxSuggestionTitleLen = 200

type SuggestionHandler struct {
	db      *sql.DB
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewSuggestionHandler(db *sql.DB, cat *catalog.Catalog, cfg cliparse.Config) *SuggestionHandler {
	return &SuggestionHandler{db: db, catalog: cat, cfg: cfg}
}

// CreateSuggestion handles POST /suggestions
// Submitting the same title twice for one screening reports success both
// times but stores a single row.
func (h *SuggestionHandler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.SuggestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ScreeningID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "screeningId is required")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > maxSuggestionTitleLen {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Title must be between 1 and 200 characters")
		return
	}

	if req.Year != 0 && (req.Year < 1900 || req.Year > time.Now().Year()+5) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid year provided")
		return
	}

	suggestion, err := db.EnsureSuggestion(h.db, req.ScreeningID, userID, title, req.Year)
	if err != nil {
		slog.Error("failed to create suggestion", "error", err, "user_id", userID, "screening_id", req.ScreeningID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}

	slog.Info("suggestion recorded", "user_id", userID, "screening_id", req.ScreeningID, "title", title)

	middleware.JSONResponse(w, http.StatusOK, models.SuggestionResponse{Suggestion: suggestion})
}

// ListSuggestions handles GET /suggestions/screening/:screeningId
func (h *SuggestionHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	screeningID := r.PathValue("screeningId")
	if screeningID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "screeningId is required")
		return
	}

	suggestions, err := db.SuggestionsForScreening(h.db, screeningID)
	if err != nil {
		slog.Error("failed to fetch suggestions", "error", err, "screening_id", screeningID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuggestionsResponse{Suggestions: suggestions})
}

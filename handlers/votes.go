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
	"github.com/danielhkuo/movie-night/db"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type VoteHandler struct {
	db      *sql.DB
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewVoteHandler(db *sql.DB, cat *catalog.Catalog, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, catalog: cat, cfg: cfg}
}

// CastVote handles POST /votes
// Casts or replaces the caller's single vote for a screening. Validation
// runs against the catalog before anything is written: unknown screening
// and unknown movie are 404, a closed voting window is 400, and a failed
// cast never disturbs a prior vote.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MovieID == "" || req.ScreeningID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "movieId and screeningId are required")
		return
	}

	s, ok := h.catalog.GetByID(req.ScreeningID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Screening not found")
		return
	}

	if !catalog.IsVotingOpen(s, time.Now()) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voting is closed for this screening")
		return
	}

	found := false
	for _, m := range s.Movies {
		if m.ID == req.MovieID {
			found = true
			break
		}
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Movie not found in this screening")
		return
	}

	vote, err := db.UpsertVote(h.db, userID, req.MovieID, req.ScreeningID)
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "user_id", userID, "screening_id", req.ScreeningID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "user_id", userID, "screening_id", req.ScreeningID, "movie_id", req.MovieID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Vote: &vote})
}

// MyVote handles GET /votes/my-vote/:screeningId
// Returns {"vote": null} when the caller hasn't voted.
func (h *VoteHandler) MyVote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	screeningID := r.PathValue("screeningId")
	if screeningID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "screeningId is required")
		return
	}

	vote, err := db.UserVote(h.db, userID, screeningID)
	if err != nil {
		slog.Error("failed to fetch vote", "error", err, "user_id", userID, "screening_id", screeningID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Vote: vote})
}

// CancelVote handles DELETE /votes/:screeningId
// Removing a vote that doesn't exist is a success, not an error.
func (h *VoteHandler) CancelVote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	screeningID := r.PathValue("screeningId")
	if screeningID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "screeningId is required")
		return
	}

	if err := db.DeleteVote(h.db, userID, screeningID); err != nil {
		slog.Error("failed to cancel vote", "error", err, "user_id", userID, "screening_id", screeningID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cancel vote")
		return
	}

	slog.Info("vote cancelled", "user_id", userID, "screening_id", screeningID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote cancelled for screening " + screeningID,
	})
}

// ClearScreening handles DELETE /votes/admin/clear/:screeningId
// Bulk-clears every vote for a screening and records a reset marker so
// the sweeper keeps the screening clean afterwards.
func (h *VoteHandler) ClearScreening(w http.ResponseWriter, r *http.Request) {
	screeningID := r.PathValue("screeningId")
	if screeningID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "screeningId is required")
		return
	}

	if _, ok := h.catalog.GetByID(screeningID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Screening not found")
		return
	}

	if err := db.ClearScreening(h.db, screeningID); err != nil {
		slog.Error("failed to clear votes", "error", err, "screening_id", screeningID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear votes")
		return
	}

	slog.Info("votes cleared", "screening_id", screeningID, "cleared_by", middleware.UserID(r))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All votes cleared for screening " + screeningID,
	})
}

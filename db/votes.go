// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/movie-night/models"
)

// UpsertVote records the user's vote for a screening, replacing any prior
// choice. The conflict clause on (user_id, screening_id) makes this a single
// atomic statement - concurrent casts from the same user can never produce
// two rows, and the row id stays stable across re-votes.
func UpsertVote(db *sql.DB, userID, movieID, screeningID string) (models.Vote, error) {
	id := "vote_" + uuid.NewString()

	_, err := db.Exec(`
		INSERT INTO vote (id, user_id, movie_id, screening_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, screening_id)
		DO UPDATE SET movie_id = excluded.movie_id, created_at = excluded.created_at
	`, id, userID, movieID, screeningID, time.Now().UTC())

	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to upsert vote: %w", err)
	}

	vote, err := UserVote(db, userID, screeningID)
	if err != nil {
		return models.Vote{}, err
	}
	if vote == nil {
		return models.Vote{}, fmt.Errorf("vote missing after upsert for user %s", userID)
	}

	return *vote, nil
}

// DeleteVote removes the user's vote for a screening. Deleting a vote that
// doesn't exist is a no-op, not an error.
func DeleteVote(db *sql.DB, userID, screeningID string) error {
	_, err := db.Exec(`
		DELETE FROM vote WHERE user_id = ? AND screening_id = ?
	`, userID, screeningID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	return nil
}

// VotesForScreening returns all votes currently recorded for a screening.
func VotesForScreening(db *sql.DB, screeningID string) ([]models.Vote, error) {
	rows, err := db.Query(`
		SELECT id, user_id, movie_id, screening_id, created_at
		FROM vote
		WHERE screening_id = ?
	`, screeningID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.MovieID, &v.ScreeningID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// UserVote returns the user's current vote for a screening, or nil if they
// haven't voted.
func UserVote(db *sql.DB, userID, screeningID string) (*models.Vote, error) {
	var v models.Vote
	err := db.QueryRow(`
		SELECT id, user_id, movie_id, screening_id, created_at
		FROM vote
		WHERE user_id = ? AND screening_id = ?
	`, userID, screeningID).Scan(&v.ID, &v.UserID, &v.MovieID, &v.ScreeningID, &v.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vote: %w", err)
	}

	return &v, nil
}

// VotersForMovie returns the identities of users currently voting for a
// movie in a screening, ordered by display name.
func VotersForMovie(db *sql.DB, movieID, screeningID string) ([]models.User, error) {
	rows, err := db.Query(`
		SELECT u.id, u.username, u.name
		FROM vote v
		JOIN user u ON v.user_id = u.id
		WHERE v.movie_id = ? AND v.screening_id = ?
		ORDER BY u.name
	`, movieID, screeningID)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	voters := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, u)
	}

	return voters, rows.Err()
}

// ClearScreening deletes every vote for a screening and upserts a reset
// marker stamped now, in one transaction. Running it twice leaves the same
// state as running it once.
func ClearScreening(db *sql.DB, screeningID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vote WHERE screening_id = ?`, screeningID); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO screening_reset (screening_id, reset_at)
		VALUES (?, ?)
		ON CONFLICT (screening_id) DO UPDATE SET reset_at = excluded.reset_at
	`, screeningID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record reset marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}

	return nil
}

// MarkReset upserts a reset marker without touching votes. The sweeper uses
// it to mark screenings whose date has passed naturally.
func MarkReset(db *sql.DB, screeningID string, at time.Time) error {
	_, err := db.Exec(`
		INSERT INTO screening_reset (screening_id, reset_at)
		VALUES (?, ?)
		ON CONFLICT (screening_id) DO UPDATE SET reset_at = excluded.reset_at
	`, screeningID, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to mark reset: %w", err)
	}

	return nil
}

// HasResetMarker reports whether a screening already carries a reset marker.
func HasResetMarker(db *sql.DB, screeningID string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM screening_reset WHERE screening_id = ?)
	`, screeningID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reset marker: %w", err)
	}

	return exists, nil
}

// SweepVotes deletes all votes belonging to screenings whose reset marker
// is stamped at or before now. Returns the number of votes purged.
// Idempotent: a second sweep over the same data deletes nothing.
func SweepVotes(db *sql.DB, now time.Time) (int64, error) {
	res, err := db.Exec(`
		DELETE FROM vote
		WHERE screening_id IN (
			SELECT screening_id FROM screening_reset WHERE reset_at <= ?
		)
	`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep votes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count swept votes: %w", err)
	}

	return n, nil
}

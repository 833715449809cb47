// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/movie-night/models"
)

// EnsureSuggestion inserts a movie suggestion, treating duplicates as a
// silent success: when the (screening, normalized title, year) triple
// already exists, the canonical stored row is returned and nothing is
// written. Year 0 means "not provided".
func EnsureSuggestion(db *sql.DB, screeningID, userID, title string, year int) (models.MovieSuggestion, error) {
	trimmed := strings.TrimSpace(title)
	norm := strings.ToLower(trimmed)
	id := "suggestion_" + uuid.NewString()

	_, err := db.Exec(`
		INSERT INTO suggestion (id, screening_id, user_id, title, title_norm, year, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (screening_id, title_norm, year) DO NOTHING
	`, id, screeningID, userID, trimmed, norm, year, time.Now().UTC())

	if err != nil {
		return models.MovieSuggestion{}, fmt.Errorf("failed to insert suggestion: %w", err)
	}

	var s models.MovieSuggestion
	err = db.QueryRow(`
		SELECT s.id, s.screening_id, s.user_id, s.title, s.year, s.created_at, u.name
		FROM suggestion s
		JOIN user u ON s.user_id = u.id
		WHERE s.screening_id = ? AND s.title_norm = ? AND s.year = ?
	`, screeningID, norm, year).Scan(
		&s.ID, &s.ScreeningID, &s.UserID, &s.Title, &s.Year, &s.CreatedAt, &s.SuggestedBy,
	)

	if err == sql.ErrNoRows {
		return models.MovieSuggestion{}, fmt.Errorf("suggestion missing after insert for screening %s", screeningID)
	}
	if err != nil {
		return models.MovieSuggestion{}, fmt.Errorf("failed to query suggestion: %w", err)
	}

	return s, nil
}

// SuggestionsForScreening returns a screening's suggestions newest first,
// each annotated with the suggesting user's display name.
func SuggestionsForScreening(db *sql.DB, screeningID string) ([]models.MovieSuggestion, error) {
	rows, err := db.Query(`
		SELECT s.id, s.screening_id, s.user_id, s.title, s.year, s.created_at, u.name
		FROM suggestion s
		JOIN user u ON s.user_id = u.id
		WHERE s.screening_id = ?
		ORDER BY s.created_at DESC, s.id DESC
	`, screeningID)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := []models.MovieSuggestion{}
	for rows.Next() {
		var s models.MovieSuggestion
		if err := rows.Scan(&s.ID, &s.ScreeningID, &s.UserID, &s.Title, &s.Year, &s.CreatedAt, &s.SuggestedBy); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, rows.Err()
}

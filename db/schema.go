// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users (created via registration; votes reference them)
CREATE TABLE IF NOT EXISTS user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Votes: the UNIQUE pair is what makes the single upsert statement
-- in UpsertVote enforce at-most-one-vote-per-user-per-screening.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES user(id),
    movie_id TEXT NOT NULL,
    screening_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (user_id, screening_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_screening ON vote(screening_id);
CREATE INDEX IF NOT EXISTS idx_vote_movie ON vote(screening_id, movie_id);

-- Reset markers: one per screening, upserted when its votes are cleared
-- (admin action or natural expiry). The sweeper deletes votes for any
-- screening marked at or before sweep time.
CREATE TABLE IF NOT EXISTS screening_reset (
    screening_id TEXT PRIMARY KEY,
    reset_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Suggestions: title_norm holds the lowercased trimmed title and year
-- is 0 when not provided, so the UNIQUE triple makes duplicate
-- suggestions a silent no-op at the storage layer.
CREATE TABLE IF NOT EXISTS suggestion (
    id TEXT PRIMARY KEY,
    screening_id TEXT NOT NULL,
    user_id TEXT NOT NULL REFERENCES user(id),
    title TEXT NOT NULL,
    title_norm TEXT NOT NULL,
    year INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (screening_id, title_norm, year)
);

CREATE INDEX IF NOT EXISTS idx_suggestion_screening ON suggestion(screening_id);
`

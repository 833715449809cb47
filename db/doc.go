// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and all vote-store persistence.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - user: Identities owned by the auth collaborator
  - vote: One vote per user per screening
  - screening_reset: One marker per cleared/expired screening
  - suggestion: User-submitted movie proposals

# Uniqueness Invariants

Two invariants are enforced by the storage layer itself, not by
read-then-write logic:

  - vote(user_id, screening_id) UNIQUE: UpsertVote uses a single
    conflict-replacing insert, so concurrent casts from one user
    (double-click) can never produce two rows.
  - suggestion(screening_id, title_norm, year) UNIQUE: EnsureSuggestion
    treats a duplicate as a silent success and returns the stored row.

# Vote Lifecycle

	absent -> cast -> (replaced | cancelled | swept) -> absent

	vote, err := db.UpsertVote(conn, userID, movieID, screeningID)
	err = db.DeleteVote(conn, userID, screeningID)   // cancel, idempotent
	err = db.ClearScreening(conn, screeningID)       // bulk clear + marker
	n, err := db.SweepVotes(conn, time.Now())        // purge marked screenings

ClearScreening and SweepVotes commute: whichever order they run in, the
screening ends up with no votes.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Movie Night API.

# Handler Types

Each handler is a struct with database, catalog and config dependencies:

  - AuthHandler: Registration, login and identity lookup
  - MovieHandler: Aggregated screening views
  - VoteHandler: Vote lifecycle (cast, inspect, cancel, bulk clear)
  - SuggestionHandler: Movie suggestions per screening

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(db, cat, cfg)

All handlers except auth run behind middleware.RequireAuth and read the
caller's identity with middleware.UserID(r).

# Vote Lifecycle

A vote moves through: absent → cast → (replaced | cancelled | swept) → absent

	POST   /votes                           → CastVote (upsert, replaces prior choice)
	GET    /votes/my-vote/{screeningId}     → MyVote
	DELETE /votes/{screeningId}             → CancelVote (idempotent)
	DELETE /votes/admin/clear/{screeningId} → ClearScreening (bulk, writes reset marker)

CastVote validates against the catalog before writing: the screening must
exist (404), its voting window must still be open (400), and the movie
must be on the screening's ballot (404). A rejected cast leaves any prior
vote untouched.

# Aggregation

The movies endpoints join the catalog with the vote store via
buildScreeningView: per-movie vote counts, name-ordered voter lists, a
voting_closed flag, and the caller's own vote for highlighting. Movies
keep catalog order; the all-screenings listing ranks them by votes with
a stable sort so ties stay in catalog order.
*/
package handlers

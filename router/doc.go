// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Movie Night API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cat, cfg)

# Endpoints

Health:

	GET /health

Auth (public):

	POST /auth/register - Create account, returns token
	POST /auth/login    - Exchange credentials for token

All remaining routes require an Authorization Bearer token.

Screenings:

	GET /movies/next-screening  - Aggregated view of the current screening
	GET /movies/screening/{id}  - Aggregated view of one screening
	GET /movies/screenings      - Aggregated view of all screenings

Votes:

	POST   /votes                          - Cast or replace the caller's vote
	GET    /votes/my-vote/{screeningId}    - The caller's current vote
	DELETE /votes/{screeningId}            - Cancel the caller's vote
	DELETE /votes/admin/clear/{screeningId} - Bulk-clear a screening's votes

Suggestions:

	POST /suggestions                          - Submit a movie suggestion
	GET  /suggestions/screening/{screeningId}  - List a screening's suggestions

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg)
	movieHandler := handlers.NewMovieHandler(db, cat, cfg)
	voteHandler := handlers.NewVoteHandler(db, cat, cfg)
	suggestionHandler := handlers.NewSuggestionHandler(db, cat, cfg)

Handlers receive the database connection, the catalog instance and the
configuration. The catalog is injected rather than global so tests can
run against their own instance.
*/
package router

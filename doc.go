// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Movie Night API server.

Movie Night lets a small group vote on which movie to watch at a scheduled
screening. Each screening carries a fixed candidate list; every user has a
single vote per screening that they can change or cancel until the
screening date passes, after which a background sweeper purges the votes.

# Starting the Server

The server requires a JWT secret via environment (a .env file is loaded
if present):

	JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3310 -d data/movienight.db -c data/config.json

# Configuration

Required settings:

  - JWT_SECRET: Secret for signing access tokens

Optional settings:

  - PORT (-p): Server port (default: 3310)
  - DATABASE_PATH (-d): SQLite database file (default: data/movienight.db)
  - CONFIG_PATH (-c): Screening catalog JSON (default: data/config.json)
  - SWEEP_INTERVAL (-sweep-interval): Vote sweep interval (default: 24h)

# Metadata Enrichment

Fetch TMDb metadata for catalog movies and exit:

	TMDB_API_KEY=... go run main.go -enrich

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, movies, votes, suggestions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Bearer auth, logging, JSON helpers
  - models: Request/response and domain types
  - catalog: Screening catalog and voting-window rules
  - db: Schema creation and vote-store persistence
  - sweeper: Recurring purge of votes for past screenings
  - tmdb: Catalog metadata enrichment
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

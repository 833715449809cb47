// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3310)
  - DatabasePath: SQLite database file (default: data/movienight.db)
  - ConfigPath: Screening catalog JSON file (default: data/config.json)
  - JWTSecret: Secret for signing access tokens (required)
  - TMDBKey: TMDb API key (required only with -enrich)
  - SweepInterval: Time between vote sweeps (default: 24h)
  - Enrich: Run metadata enrichment instead of the server

# CLI Flags

	-p              Server port
	-d              Database path
	-c              Catalog path
	-sweep-interval Sweep interval (Go duration, e.g. 24h)
	-enrich         Fetch TMDb metadata for catalog movies and exit

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_PATH  → -d
	CONFIG_PATH    → -c
	SWEEP_INTERVAL → -sweep-interval
	JWT_SECRET     (no flag; secrets stay out of argv)
	TMDB_API_KEY   (no flag)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - JWT_SECRET must be provided for server runs
  - TMDB_API_KEY must be provided for -enrich runs
*/
package cliparse

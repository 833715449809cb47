// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tmdb enriches catalog movies with metadata from the TMDb API.

Enrichment is an operational task, run via the -enrich flag rather than
the HTTP surface:

	TMDB_API_KEY=... movie-night -enrich

	client := tmdb.NewClient(apiKey)
	n, err := tmdb.EnrichCatalog(ctx, client, cat)

Lookup resolves a (title, year) pair to the best search match and fetches
its details (overview, poster, genres, runtime...). Movies that already
carry metadata are skipped, so the command is safe to re-run after adding
new screenings to the catalog.
*/
package tmdb

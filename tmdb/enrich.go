// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tmdb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/movie-night/catalog"
)

// EnrichCatalog fills in missing metadata for every movie in the catalog
// and persists the result. Movies that already carry metadata are left
// alone, so re-running is cheap. Returns how many movies were enriched.
func EnrichCatalog(ctx context.Context, c *Client, cat *catalog.Catalog) (int, error) {
	screenings := cat.GetAll()
	enriched := 0

	for si := range screenings {
		for mi := range screenings[si].Movies {
			movie := &screenings[si].Movies[mi]
			if movie.Metadata != nil && movie.Metadata.TMDBID != nil {
				continue
			}

			meta, err := c.Lookup(ctx, movie.Title, movie.Year)
			if errors.Is(err, ErrNotFound) {
				slog.Warn("no TMDb match", "title", movie.Title, "year", movie.Year)
				continue
			}
			if err != nil {
				return enriched, err
			}

			movie.Metadata = &meta
			enriched++
			slog.Info("metadata fetched", "title", movie.Title, "year", movie.Year, "tmdb_id", *meta.TMDBID)
		}
	}

	if enriched == 0 {
		return 0, nil
	}

	if err := cat.ReplaceAll(screenings); err != nil {
		return enriched, err
	}

	return enriched, nil
}

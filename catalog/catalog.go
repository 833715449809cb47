// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/danielhkuo/movie-night/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog holds the current set of screenings and their candidate movies.
// It is read-mostly: the voting subsystem never mutates it, and the only
// writer is ReplaceAll (config sync) or the initial Load. All accessors
// take the lock, so readers always see a fully-old or fully-new catalog.
type Catalog struct {
	mu         sync.RWMutex
	path       string
	screenings []models.Screening
}

type catalogFile struct {
	Screenings []models.Screening `json:"screenings"`
}

// Load reads the catalog from the JSON file at path. If the file doesn't
// exist, the built-in default screenings are seeded and saved so the
// system is usable out of the box.
func Load(path string) (*Catalog, error) {
	c := &Catalog{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no catalog found, seeding defaults", "path", path)
		c.screenings = defaultScreenings(time.Now())
		if err := c.save(); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validate(file.Screenings); err != nil {
		return nil, err
	}

	c.screenings = file.Screenings
	slog.Info("catalog loaded", "path", path, "screenings", len(c.screenings))

	return c, nil
}

// GetAll returns all screenings in stored order.
func (c *Catalog) GetAll() []models.Screening {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Screening, len(c.screenings))
	copy(out, c.screenings)
	return out
}

// GetByID returns the screening with the given id.
func (c *Catalog) GetByID(id string) (models.Screening, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, s := range c.screenings {
		if s.ID == id {
			return s, true
		}
	}
	return models.Screening{}, false
}

// GetNext returns the upcoming screening with the smallest date strictly
// after now. Ties on the instant break by id so the answer is stable.
func (c *Catalog) GetNext(now time.Time) (models.Screening, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var next models.Screening
	found := false
	for _, s := range c.screenings {
		if !s.Date.After(now) {
			continue
		}
		if !found || s.Date.Before(next.Date) || (s.Date.Equal(next.Date) && s.ID < next.ID) {
			next = s
			found = true
		}
	}
	return next, found
}

// Current resolves the screening a client with no explicit selection should
// see: the next upcoming one, or the earliest in the catalog when every
// screening has already passed. Returns false only on an empty catalog.
func (c *Catalog) Current(now time.Time) (models.Screening, bool) {
	if next, ok := c.GetNext(now); ok {
		return next, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.screenings) == 0 {
		return models.Screening{}, false
	}

	earliest := c.screenings[0]
	for _, s := range c.screenings[1:] {
		if s.Date.Before(earliest.Date) || (s.Date.Equal(earliest.Date) && s.ID < earliest.ID) {
			earliest = s
		}
	}
	return earliest, true
}

// ReplaceAll swaps the whole catalog atomically and persists it. The new
// catalog is validated before the swap; on error the old catalog stays
// untouched. This is the config-sync entry point - there is no partial
// mutation of screenings anywhere.
func (c *Catalog) ReplaceAll(screenings []models.Screening) error {
	if err := validate(screenings); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.screenings
	c.screenings = screenings
	if err := c.save(); err != nil {
		c.screenings = old
		return err
	}

	slog.Info("catalog replaced", "screenings", len(screenings))
	return nil
}

// save writes the catalog to disk. Caller must hold the write lock (or be
// the sole owner, as during Load).
func (c *Catalog) save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalog dir: %w", err)
	}

	data, err := json.MarshalIndent(catalogFile{Screenings: c.screenings}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return nil
}

func validate(screenings []models.Screening) error {
	seenScreenings := make(map[string]bool, len(screenings))
	for _, s := range screenings {
		if s.ID == "" {
			return fmt.Errorf("%w: screening with empty id", ErrInvalidCatalog)
		}
		if seenScreenings[s.ID] {
			return fmt.Errorf("%w: duplicate screening id %q", ErrInvalidCatalog, s.ID)
		}
		seenScreenings[s.ID] = true

		if s.Date.IsZero() {
			return fmt.Errorf("%w: screening %q has no date", ErrInvalidCatalog, s.ID)
		}

		seenMovies := make(map[string]bool, len(s.Movies))
		for _, m := range s.Movies {
			if m.ID == "" {
				return fmt.Errorf("%w: screening %q has a movie with empty id", ErrInvalidCatalog, s.ID)
			}
			if seenMovies[m.ID] {
				return fmt.Errorf("%w: duplicate movie id %q in screening %q", ErrInvalidCatalog, m.ID, s.ID)
			}
			seenMovies[m.ID] = true
		}
	}

	return nil
}

// defaultScreenings mirrors the seed set the system ships with: two movie
// nights one and two weeks out.
func defaultScreenings(now time.Time) []models.Screening {
	return []models.Screening{
		{
			ID:   "screening_1",
			Date: now.AddDate(0, 0, 7),
			Movies: []models.Movie{
				{ID: "movie_1", Title: "The Matrix", Year: 1999},
				{ID: "movie_2", Title: "Inception", Year: 2010},
				{ID: "movie_3", Title: "Interstellar", Year: 2014},
				{ID: "movie_4", Title: "Blade Runner 2049", Year: 2017},
			},
		},
		{
			ID:   "screening_2",
			Date: now.AddDate(0, 0, 14),
			Movies: []models.Movie{
				{ID: "movie_5", Title: "The Dark Knight", Year: 2008},
				{ID: "movie_6", Title: "Pulp Fiction", Year: 1994},
				{ID: "movie_7", Title: "The Godfather", Year: 1972},
				{ID: "movie_8", Title: "Goodfellas", Year: 1990},
			},
		},
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"time"

	"github.com/danielhkuo/movie-night/models"
)

// IsVotingOpen reports whether a screening still accepts votes. The voting
// window runs from the moment a screening exists in the catalog until its
// date: it closes the instant the screening time is reached, with no grace
// period.
func IsVotingOpen(s models.Screening, now time.Time) bool {
	return s.Date.After(now)
}

// Expired returns every screening whose date has passed as of now. The
// sweeper uses this to decide which screenings' votes are stale.
func (c *Catalog) Expired(now time.Time) []models.Screening {
	c.mu.RLock()
	defer c.mu.RUnlock()

	expired := []models.Screening{}
	for _, s := range c.screenings {
		if !s.Date.After(now) {
			expired = append(expired, s)
		}
	}
	return expired
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sweeper

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/db"
)

// Sweeper purges votes that belong to screenings whose date has passed.
// It runs on a fixed interval; a failed cycle is logged and retried on
// the next tick, never propagated.
type Sweeper struct {
	db       *sql.DB
	catalog  *catalog.Catalog
	interval time.Duration
}

func New(conn *sql.DB, cat *catalog.Catalog, interval time.Duration) *Sweeper {
	return &Sweeper{db: conn, catalog: cat, interval: interval}
}

// Run blocks, sweeping once per interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	slog.Info("sweeper started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sweeper stopped")
			return
		case <-ticker.C:
			if err := s.Sweep(time.Now()); err != nil {
				slog.Error("sweep cycle failed", "error", err)
			}
		}
	}
}

// Sweep performs one cycle: every naturally expired screening gets a
// reset marker (so screenings that were never explicitly cleared are
// still purged), then all votes under a due marker are deleted. Running
// it twice on the same data changes nothing.
func (s *Sweeper) Sweep(now time.Time) error {
	for _, expired := range s.catalog.Expired(now) {
		marked, err := db.HasResetMarker(s.db, expired.ID)
		if err != nil {
			return err
		}
		if marked {
			continue
		}

		if err := db.MarkReset(s.db, expired.ID, now); err != nil {
			return err
		}
		slog.Info("screening expired, marked for sweep",
			"screening_id", expired.ID,
			"screened", humanize.Time(expired.Date),
		)
	}

	purged, err := db.SweepVotes(s.db, now)
	if err != nil {
		return err
	}

	if purged > 0 {
		slog.Info("swept stale votes", "purged", purged)
	}

	return nil
}

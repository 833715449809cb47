// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"sort"
	"time"

	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/db"
	"github.com/danielhkuo/movie-night/models"
)

// buildScreeningView joins a catalog screening with the vote store:
// per-movie vote counts plus the identity list of who voted for what.
// Movies keep catalog order; ties are never reshuffled.
func buildScreeningView(conn *sql.DB, s models.Screening, now time.Time) (models.ScreeningView, error) {
	votes, err := db.VotesForScreening(conn, s.ID)
	if err != nil {
		return models.ScreeningView{}, err
	}

	counts := make(map[string]int, len(s.Movies))
	for _, v := range votes {
		counts[v.MovieID]++
	}

	view := models.ScreeningView{
		ID:           s.ID,
		Date:         s.Date,
		Theme:        s.Theme,
		VotingClosed: !catalog.IsVotingOpen(s, now),
		Movies:       make([]models.MovieView, 0, len(s.Movies)),
	}

	for _, m := range s.Movies {
		voters, err := db.VotersForMovie(conn, m.ID, s.ID)
		if err != nil {
			return models.ScreeningView{}, err
		}

		view.Movies = append(view.Movies, models.MovieView{
			ID:       m.ID,
			Title:    m.Title,
			Year:     m.Year,
			Metadata: m.Metadata,
			Votes:    counts[m.ID],
			Voters:   voters,
		})
	}

	return view, nil
}

// attachMyVote annotates a view with the caller's own vote for client-side
// highlighting. A missing vote leaves MyVote nil.
func attachMyVote(conn *sql.DB, view *models.ScreeningView, userID string) error {
	vote, err := db.UserVote(conn, userID, view.ID)
	if err != nil {
		return err
	}
	view.MyVote = vote
	return nil
}

// sortByVotes orders movies descending by vote count. The sort is stable,
// so equal counts preserve catalog order.
func sortByVotes(movies []models.MovieView) {
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Votes > movies[j].Votes
	})
}

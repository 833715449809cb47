// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/movie-night/models"
	"github.com/danielhkuo/movie-night/testutil"
)

func TestGetScreeningAggregation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cat := testutil.SeedCatalog(t, []models.Screening{
		testutil.TestScreening("s_open", time.Now().AddDate(0, 0, 7)),
	})

	handler := NewMovieHandler(conn, cat, cfg)
	alice := testutil.CreateTestUser(t, conn, "alice", "Alice")
	bob := testutil.CreateTestUser(t, conn, "bob", "Bob")
	authHeader := testutil.AuthHeader(t, cfg, alice.ID)

	// Two votes for movie B, none for movie A
	testutil.CastTestVote(t, conn, alice.ID, "s_open_b", "s_open")
	testutil.CastTestVote(t, conn, bob.ID, "s_open_b", "s_open")

	req := testutil.MakeRequest("GET", "/movies/screening/s_open", nil, map[string]string{
		"Authorization": authHeader,
	})
	req.SetPathValue("id", "s_open")
	w := httptest.NewRecorder()
	protect(cfg.JWTSecret, handler.GetScreening)(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.ScreeningResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Screening == nil {
		t.Fatal("Expected a screening in the response")
	}
	view := resp.Screening
	if view.ID != "s_open" {
		t.Errorf("Expected screening s_open, got %s", view.ID)
	}
	if view.VotingClosed {
		t.Error("Expected voting open for a future screening")
	}
	if len(view.Movies) != 2 {
		t.Fatalf("Expected 2 movies, got %d", len(view.Movies))
	}

	// Movies keep catalog order: A first even with zero votes
	movieA, movieB := view.Movies[0], view.Movies[1]
	if movieA.ID != "s_open_a" || movieB.ID != "s_open_b" {
		t.Fatalf("Expected catalog order, got %s then %s", movieA.ID, movieB.ID)
	}
	if movieA.Votes != 0 {
		t.Errorf("Expected 0 votes for movie A, got %d", movieA.Votes)
	}
	if len(movieA.Voters) != 0 {
		t.Errorf("Expected empty voter list for movie A, got %d", len(movieA.Voters))
	}
	if movieB.Votes != 2 {
		t.Errorf("Expected 2 votes for movie B, got %d", movieB.Votes)
	}

	// Voter identities surface ordered by display name
	if len(movieB.Voters) != 2 {
		t.Fatalf("Expected 2 voters for movie B, got %d", len(movieB.Voters))
	}
	if movieB.Voters[0].Name != "Alice" || movieB.Voters[1].Name != "Bob" {
		t.Errorf("Expected voters [Alice, Bob], got [%s, %s]", movieB.Voters[0].Name, movieB.Voters[1].Name)
	}

	// The caller's own vote is attached for highlighting
	if view.MyVote == nil {
		t.Fatal("Expected the caller's vote in the view")
	}
	if view.MyVote.MovieID != "s_open_b" {
		t.Errorf("Expected my_vote for s_open_b, got %s", view.MyVote.MovieID)
	}
}

func TestGetScreeningNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cat := testutil.SeedCatalog(t, []models.Screening{
		testutil.TestScreening("s_open", time.Now().AddDate(0, 0, 7)),
	})

	handler := NewMovieHandler(conn, cat, cfg)
	user := testutil.CreateTestUser(t, conn, "alice", "Alice")

	req := testutil.MakeRequest("GET", "/movies/screening/s_missing", nil, map[string]string{
		"Authorization": testutil.AuthHeader(t, cfg, user.ID),
	})
	req.SetPathValue("id", "s_missing")
	w := httptest.NewRecorder()
	protect(cfg.JWTSecret, handler.GetScreening)(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestNextScreening(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		screenings []models.Screening
		expectedID string
		expectNull bool
		closed     bool
	}{
		{
			name: "picks the soonest upcoming screening",
			screenings: []models.Screening{
				testutil.TestScreening("s_far", now.AddDate(0, 0, 14)),
				testutil.TestScreening("s_near", now.AddDate(0, 0, 7)),
			},
			expectedID: "s_near",
		},
		{
			name: "falls back to the earliest when all passed",
			screenings: []models.Screening{
				testutil.TestScreening("s_recent", now.AddDate(0, 0, -1)),
				testutil.TestScreening("s_oldest", now.AddDate(0, 0, -14)),
			},
			expectedID: "s_oldest",
			closed:     true,
		},
		{
			name:       "empty catalog returns null",
			screenings: []models.Screening{},
			expectNull: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := testutil.SetupTestDB(t)
			cfg := testutil.GetTestConfig()
			cat := testutil.SeedCatalog(t, tt.screenings)

			handler := NewMovieHandler(conn, cat, cfg)
			user := testutil.CreateTestUser(t, conn, "alice", "Alice")

			req := testutil.MakeRequest("GET", "/movies/next-screening", nil, map[string]string{
				"Authorization": testutil.AuthHeader(t, cfg, user.ID),
			})
			w := httptest.NewRecorder()
			protect(cfg.JWTSecret, handler.NextScreening)(w, req)
			testutil.AssertStatus(t, w, 200)

			var resp models.ScreeningResponse
			testutil.AssertJSON(t, w, &resp)

			if tt.expectNull {
				if resp.Screening != nil {
					t.Errorf("Expected null screening, got %+v", resp.Screening)
				}
				return
			}

			if resp.Screening == nil {
				t.Fatal("Expected a screening in the response")
			}
			if resp.Screening.ID != tt.expectedID {
				t.Errorf("Expected screening %s, got %s", tt.expectedID, resp.Screening.ID)
			}
			if resp.Screening.VotingClosed != tt.closed {
				t.Errorf("Expected voting_closed=%v, got %v", tt.closed, resp.Screening.VotingClosed)
			}
		})
	}
}

func TestListScreeningsRankedByVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cat := testutil.SeedCatalog(t, []models.Screening{
		testutil.TestScreening("s_open", time.Now().AddDate(0, 0, 7)),
		testutil.TestScreening("s_other", time.Now().AddDate(0, 0, 14)),
	})

	handler := NewMovieHandler(conn, cat, cfg)
	alice := testutil.CreateTestUser(t, conn, "alice", "Alice")
	bob := testutil.CreateTestUser(t, conn, "bob", "Bob")

	// Movie B leads in s_open; s_other has no votes
	testutil.CastTestVote(t, conn, alice.ID, "s_open_b", "s_open")
	testutil.CastTestVote(t, conn, bob.ID, "s_open_b", "s_open")

	req := testutil.MakeRequest("GET", "/movies/screenings", nil, map[string]string{
		"Authorization": testutil.AuthHeader(t, cfg, alice.ID),
	})
	w := httptest.NewRecorder()
	protect(cfg.JWTSecret, handler.ListScreenings)(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.ScreeningsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Screenings) != 2 {
		t.Fatalf("Expected 2 screenings, got %d", len(resp.Screenings))
	}

	var open *models.ScreeningView
	for i := range resp.Screenings {
		if resp.Screenings[i].ID == "s_open" {
			open = &resp.Screenings[i]
		}
	}
	if open == nil {
		t.Fatal("Expected s_open in the listing")
	}

	// The listing ranks movies by vote count, leader first
	if open.Movies[0].ID != "s_open_b" {
		t.Errorf("Expected s_open_b ranked first, got %s", open.Movies[0].ID)
	}
	if open.Movies[0].Votes != 2 || open.Movies[1].Votes != 0 {
		t.Errorf("Unexpected vote counts: %d, %d", open.Movies[0].Votes, open.Movies[1].Votes)
	}
}

func TestListScreeningsTiesKeepCatalogOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cat := testutil.SeedCatalog(t, []models.Screening{
		testutil.TestScreening("s_open", time.Now().AddDate(0, 0, 7)),
	})

	handler := NewMovieHandler(conn, cat, cfg)
	alice := testutil.CreateTestUser(t, conn, "alice", "Alice")
	bob := testutil.CreateTestUser(t, conn, "bob", "Bob")

	// One vote each: a tie
	testutil.CastTestVote(t, conn, alice.ID, "s_open_a", "s_open")
	testutil.CastTestVote(t, conn, bob.ID, "s_open_b", "s_open")

	req := testutil.MakeRequest("GET", "/movies/screenings", nil, map[string]string{
		"Authorization": testutil.AuthHeader(t, cfg, alice.ID),
	})
	w := httptest.NewRecorder()
	protect(cfg.JWTSecret, handler.ListScreenings)(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.ScreeningsResponse
	testutil.AssertJSON(t, w, &resp)

	movies := resp.Screenings[0].Movies
	if movies[0].ID != "s_open_a" || movies[1].ID != "s_open_b" {
		t.Errorf("Expected tie to keep catalog order, got %s then %s", movies[0].ID, movies[1].ID)
	}
}

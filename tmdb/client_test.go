// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/models"
)

// fakeTMDB serves canned search and details responses and records queries
func fakeTMDB(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("query") == "Unknown Film" {
			json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{"id": 603}},
		})
	})
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, r *http.Request) {
		runtime := 136
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":           603,
			"overview":     "A computer hacker learns the truth.",
			"vote_average": 8.2,
			"vote_count":   26000,
			"runtime":      runtime,
			"release_date": "1999-03-30",
			"tagline":      "Welcome to the Real World",
			"genres": []map[string]string{
				{"name": "Action"},
				{"name": "Science Fiction"},
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLookup(t *testing.T) {
	server := fakeTMDB(t)

	client := NewClient("test-key")
	client.baseURL = server.URL

	meta, err := client.Lookup(context.Background(), "The Matrix", 1999)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if meta.TMDBID == nil || *meta.TMDBID != 603 {
		t.Errorf("Expected TMDb id 603, got %v", meta.TMDBID)
	}
	if meta.Overview == "" {
		t.Error("Expected an overview")
	}
	if meta.Runtime == nil || *meta.Runtime != 136 {
		t.Errorf("Expected runtime 136, got %v", meta.Runtime)
	}
	if len(meta.Genres) != 2 || meta.Genres[0] != "Action" {
		t.Errorf("Unexpected genres: %v", meta.Genres)
	}
	if meta.FetchedAt == "" {
		t.Error("Expected a fetch timestamp")
	}
}

func TestLookupNoMatch(t *testing.T) {
	server := fakeTMDB(t)

	client := NewClient("test-key")
	client.baseURL = server.URL

	_, err := client.Lookup(context.Background(), "Unknown Film", 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.baseURL = server.URL

	_, err := client.Lookup(context.Background(), "The Matrix", 1999)
	if err == nil {
		t.Error("Expected error for upstream failure")
	}
}

func TestEnrichCatalog(t *testing.T) {
	server := fakeTMDB(t)

	client := NewClient("test-key")
	client.baseURL = server.URL

	existingID := 42
	cat, err := catalog.Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	err = cat.ReplaceAll([]models.Screening{
		{
			ID:   "s_night",
			Date: time.Now().AddDate(0, 0, 7),
			Movies: []models.Movie{
				{ID: "m_plain", Title: "The Matrix", Year: 1999},
				{ID: "m_enriched", Title: "Inception", Year: 2010, Metadata: &models.MovieMetadata{TMDBID: &existingID}},
				{ID: "m_unknown", Title: "Unknown Film", Year: 2003},
			},
		},
	})
	if err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}

	enriched, err := EnrichCatalog(context.Background(), client, cat)
	if err != nil {
		t.Fatalf("EnrichCatalog failed: %v", err)
	}

	// Only the plain movie gets metadata: one already has it, one has no match
	if enriched != 1 {
		t.Errorf("Expected 1 enriched movie, got %d", enriched)
	}

	s, ok := cat.GetByID("s_night")
	if !ok {
		t.Fatal("Screening vanished from catalog")
	}

	for _, m := range s.Movies {
		switch m.ID {
		case "m_plain":
			if m.Metadata == nil || m.Metadata.TMDBID == nil || *m.Metadata.TMDBID != 603 {
				t.Errorf("Expected m_plain enriched with id 603, got %+v", m.Metadata)
			}
		case "m_enriched":
			if m.Metadata == nil || *m.Metadata.TMDBID != existingID {
				t.Errorf("Expected existing metadata preserved, got %+v", m.Metadata)
			}
		case "m_unknown":
			if m.Metadata != nil {
				t.Errorf("Expected no metadata for unmatched movie, got %+v", m.Metadata)
			}
		}
	}
}

func TestEnrichCatalogNothingToDo(t *testing.T) {
	server := fakeTMDB(t)

	client := NewClient("test-key")
	client.baseURL = server.URL

	id := 603
	cat, err := catalog.Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	err = cat.ReplaceAll([]models.Screening{
		{
			ID:   "s_night",
			Date: time.Now().AddDate(0, 0, 7),
			Movies: []models.Movie{
				{ID: "m_done", Title: "The Matrix", Year: 1999, Metadata: &models.MovieMetadata{TMDBID: &id}},
			},
		},
	})
	if err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}

	enriched, err := EnrichCatalog(context.Background(), client, cat)
	if err != nil {
		t.Fatalf("EnrichCatalog failed: %v", err)
	}
	if enriched != 0 {
		t.Errorf("Expected nothing enriched, got %d", enriched)
	}
}

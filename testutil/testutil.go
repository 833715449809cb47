// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/movie-night/auth"
	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/db"
	"github.com/danielhkuo/movie-night/models"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// A single connection keeps concurrent test writes serialized the
	// same way the production file database serializes them.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3310,
		DatabasePath:  ":memory:",
		ConfigPath:    "test-config.json",
		JWTSecret:     "test-jwt-secret",
		SweepInterval: 24 * time.Hour,
	}
}

// SeedCatalog creates a catalog instance backed by a temp file and filled
// with the given screenings.
func SeedCatalog(t *testing.T, screenings []models.Screening) *catalog.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Failed to load test catalog: %v", err)
	}
	if err := cat.ReplaceAll(screenings); err != nil {
		t.Fatalf("Failed to seed test catalog: %v", err)
	}

	return cat
}

// TestScreening builds a screening with the given id and date and two
// candidate movies ("<id>_a", "<id>_b").
func TestScreening(id string, date time.Time) models.Screening {
	return models.Screening{
		ID:   id,
		Date: date,
		Movies: []models.Movie{
			{ID: id + "_a", Title: "Movie A", Year: 2001},
			{ID: id + "_b", Title: "Movie B", Year: 2002},
		},
	}
}

// CreateTestUser inserts a user and returns their identity
func CreateTestUser(t *testing.T, conn *sql.DB, username, name string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("test-password")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user, err := db.CreateUser(conn, username, name, hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CastTestVote records a vote directly through the store
func CastTestVote(t *testing.T, conn *sql.DB, userID, movieID, screeningID string) models.Vote {
	t.Helper()

	vote, err := db.UpsertVote(conn, userID, movieID, screeningID)
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}

	return vote
}

// AuthHeader returns the Authorization header value for a user
func AuthHeader(t *testing.T, cfg cliparse.Config, userID string) string {
	t.Helper()

	token, err := auth.GenerateToken(userID, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Failed to generate test token: %v", err)
	}

	return "Bearer " + token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

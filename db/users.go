// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/movie-night/models"
)

// ErrUsernameTaken is returned by CreateUser when the username is in use.
var ErrUsernameTaken = errors.New("username already taken")

// CreateUser inserts a new user with the given bcrypt password hash.
func CreateUser(db *sql.DB, username, name, passwordHash string) (models.User, error) {
	id := "user_" + uuid.NewString()

	_, err := db.Exec(`
		INSERT INTO user (id, username, name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, username, name, passwordHash, time.Now().UTC())

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return models.User{ID: id, Username: username, Name: name}, nil
}

// UserByUsername returns the user and their password hash, or nil if the
// username is unknown.
func UserByUsername(db *sql.DB, username string) (*models.User, string, error) {
	var u models.User
	var hash string
	err := db.QueryRow(`
		SELECT id, username, name, password_hash
		FROM user
		WHERE username = ?
	`, username).Scan(&u.ID, &u.Username, &u.Name, &hash)

	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to query user: %w", err)
	}

	return &u, hash, nil
}

// UserByID returns the user's public identity, or nil if unknown.
func UserByID(db *sql.DB, id string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, username, name FROM user WHERE id = ?
	`, id).Scan(&u.ID, &u.Username, &u.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

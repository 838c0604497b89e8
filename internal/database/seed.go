package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin, a regular author, and a starter taxonomy. It is a no-op if any
// users already exist.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	users := []struct {
		email, password, name, role string
	}{
		{"admin@inkwell.local", "admin", "Admin", "ADMIN"},
		{"author@inkwell.local", "author", "Author", "USER"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed bcrypt: %w", err)
		}
		if _, err := db.Exec(`
			INSERT INTO users (email, password_hash, name, role)
			VALUES ($1, $2, $3, $4)
		`, u.email, string(hash), u.name, u.role); err != nil {
			return fmt.Errorf("seed insert user %s: %w", u.email, err)
		}
	}

	categories := []struct{ name, slug string }{
		{"Web Development", "web-development"},
		{"Culture", "culture"},
		{"Tutorials", "tutorials"},
	}
	for _, c := range categories {
		if _, err := db.Exec(`
			INSERT INTO categories (name, slug) VALUES ($1, $2)
		`, c.name, c.slug); err != nil {
			return fmt.Errorf("seed insert category %s: %w", c.slug, err)
		}
	}

	tags := []struct{ name, slug string }{
		{"Go", "go"},
		{"PostgreSQL", "postgresql"},
		{"Amharic", "amharic"},
	}
	for _, t := range tags {
		if _, err := db.Exec(`
			INSERT INTO tags (name, slug) VALUES ($1, $2)
		`, t.name, t.slug); err != nil {
			return fmt.Errorf("seed insert tag %s: %w", t.slug, err)
		}
	}

	if _, err := db.Exec(`
		INSERT INTO posts (title, slug, content, published, published_at, author_id)
		SELECT 'Welcome to Inkwell', 'welcome-to-inkwell',
		       '# Welcome' || E'\n\n' || 'This is your first post. Edit or delete it, then start writing.',
		       TRUE, NOW(), id
		FROM users WHERE email = 'author@inkwell.local'
	`); err != nil {
		return fmt.Errorf("seed insert post: %w", err)
	}

	slog.Info("database seeded with default users",
		"admin", "admin@inkwell.local",
		"author", "author@inkwell.local",
	)

	return nil
}

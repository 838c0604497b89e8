// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/blog"
	"inkwell/internal/models"
)

// TagStore manages tags and their post memberships in the database.
type TagStore struct {
	db *sql.DB
}

// NewTagStore returns a new TagStore.
func NewTagStore(db *sql.DB) *TagStore {
	return &TagStore{db: db}
}

const tagColumns = `id, name, slug, description, created_at, updated_at`

// scanTag scans a row into a Tag struct.
func scanTag(scanner interface{ Scan(...any) error }) (*models.Tag, error) {
	var t models.Tag
	err := scanner.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all tags ordered by name, with published-post counts.
func (s *TagStore) List() ([]models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.slug, t.description, t.created_at, t.updated_at,
		       COUNT(p.id) AS post_count
		FROM tags t
		LEFT JOIN post_tags pt ON pt.tag_id = t.id
		LEFT JOIN posts p ON p.id = pt.post_id AND p.published = TRUE
		GROUP BY t.id
		ORDER BY t.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Slug, &t.Description,
			&t.CreatedAt, &t.UpdatedAt, &t.PostCount,
		); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindByID retrieves a tag by ID. Returns nil if not found.
func (s *TagStore) FindByID(id uuid.UUID) (*models.Tag, error) {
	row := s.db.QueryRow(`SELECT `+tagColumns+` FROM tags WHERE id = $1`, id)
	t, err := scanTag(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by id: %w", err)
	}
	return t, nil
}

// FindByIDs retrieves the tags matching the given IDs. Missing IDs are
// simply absent from the result; the caller compares lengths.
func (s *TagStore) FindByIDs(ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	textIDs := make([]string, len(ids))
	for i, id := range ids {
		textIDs[i] = id.String()
	}
	rows, err := s.db.Query(`SELECT `+tagColumns+` FROM tags WHERE id = ANY($1::uuid[])`, textIDs)
	if err != nil {
		return nil, fmt.Errorf("find tags by ids: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a tag by slug. Returns nil if not found.
func (s *TagStore) FindBySlug(slug string) (*models.Tag, error) {
	row := s.db.QueryRow(`SELECT `+tagColumns+` FROM tags WHERE slug = $1`, slug)
	t, err := scanTag(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by slug: %w", err)
	}
	return t, nil
}

// FindBySlugWithPosts retrieves a tag by slug together with its published
// posts, newest first, authors resolved. Returns nil if not found.
func (s *TagStore) FindBySlugWithPosts(slug string) (*models.Tag, error) {
	t, err := s.FindBySlug(slug)
	if err != nil || t == nil {
		return t, err
	}

	posts := NewPostStore(s.db)
	t.Posts, err = posts.list(`
		JOIN post_tags pt ON pt.post_id = p.id
		WHERE pt.tag_id = $1 AND p.published = TRUE`, []any{t.ID})
	if err != nil {
		return nil, err
	}
	t.PostCount = len(t.Posts)
	return t, nil
}

// Create inserts a new tag and returns it.
func (s *TagStore) Create(t *models.Tag) (*models.Tag, error) {
	row := s.db.QueryRow(`
		INSERT INTO tags (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING `+tagColumns,
		t.Name, t.Slug, t.Description,
	)
	result, err := scanTag(row)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, blog.Conflict("A tag with this name already exists")
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return result, nil
}

// Update modifies an existing tag and returns the stored row. Returns nil
// if the tag no longer exists.
func (s *TagStore) Update(t *models.Tag) (*models.Tag, error) {
	row := s.db.QueryRow(`
		UPDATE tags SET
			name = $1, slug = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+tagColumns,
		t.Name, t.Slug, t.Description, t.ID,
	)
	result, err := scanTag(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, blog.Conflict("A tag with this name already exists")
		}
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return result, nil
}

// Delete removes a tag by ID. Membership rows are dropped with it
// (ON DELETE CASCADE); the tagged posts stay.
func (s *TagStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

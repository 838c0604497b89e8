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

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by name, with published-post counts.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
		       COUNT(p.id) AS post_count
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id AND p.published = TRUE
		GROUP BY c.id
		ORDER BY c.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description,
			&c.CreatedAt, &c.UpdatedAt, &c.PostCount,
		); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a category by slug. Returns nil if not found.
func (s *CategoryStore) FindBySlug(slug string) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return c, nil
}

// FindBySlugWithPosts retrieves a category by slug together with its
// published posts, newest first, authors resolved. Used by the public read
// path. Returns nil if not found.
func (s *CategoryStore) FindBySlugWithPosts(slug string) (*models.Category, error) {
	c, err := s.FindBySlug(slug)
	if err != nil || c == nil {
		return c, err
	}

	posts := NewPostStore(s.db)
	c.Posts, err = posts.list(`WHERE p.category_id = $1 AND p.published = TRUE`, []any{c.ID})
	if err != nil {
		return nil, err
	}
	c.PostCount = len(c.Posts)
	return c, nil
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description,
	)
	result, err := scanCategory(row)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, blog.Conflict("A category with this name already exists")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies an existing category and returns the stored row.
// Returns nil if the category no longer exists.
func (s *CategoryStore) Update(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		UPDATE categories SET
			name = $1, slug = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description, c.ID,
	)
	result, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, blog.Conflict("A category with this name already exists")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return result, nil
}

// Delete removes a category by ID. Referencing posts keep existing with a
// null category (ON DELETE SET NULL); no cascade.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

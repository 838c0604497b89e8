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

// PostStore handles all post-related database operations, including the
// post_tags membership table.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, slug, content, excerpt, published, featured,
	published_at, author_id, category_id, created_at, updated_at`

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Published,
		&p.Featured, &p.PublishedAt, &p.AuthorID, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID retrieves a post by its UUID with relations resolved.
// Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	if err := s.attachRelations(p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindBySlug retrieves a post by slug regardless of publish state. Used by
// the uniqueness check. Returns nil if not found.
func (s *PostStore) FindBySlug(slug string) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// FindPublishedBySlug retrieves a published post by slug with relations
// resolved. This is the only slug lookup the public read path uses, so
// drafts are never exposed through it. Returns nil if not found.
func (s *PostStore) FindPublishedBySlug(slug string) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+` FROM posts WHERE slug = $1 AND published = TRUE
	`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published post by slug: %w", err)
	}
	if err := s.attachRelations(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPublished returns all published posts with authors resolved, ordered
// by creation date descending.
func (s *PostStore) ListPublished() ([]models.Post, error) {
	return s.list(`WHERE p.published = TRUE`, nil)
}

// ListByAuthor returns all of one author's posts, drafts included, ordered
// by creation date descending.
func (s *PostStore) ListByAuthor(authorID uuid.UUID) ([]models.Post, error) {
	return s.list(`WHERE p.author_id = $1`, []any{authorID})
}

// LatestByAuthor returns the author's most recent post. Returns nil if the
// author has none.
func (s *PostStore) LatestByAuthor(authorID uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+` FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, authorID)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest post by author: %w", err)
	}
	if err := s.attachRelations(p); err != nil {
		return nil, err
	}
	return p, nil
}

// list runs a filtered post query and resolves authors and tags.
func (s *PostStore) list(where string, args []any) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.slug, p.content, p.excerpt, p.published,
		       p.featured, p.published_at, p.author_id, p.category_id,
		       p.created_at, p.updated_at,
		       u.name, u.image
		FROM posts p
		JOIN users u ON u.id = p.author_id
		`+where+`
		ORDER BY p.created_at DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		var p models.Post
		var author models.Author
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Published,
			&p.Featured, &p.PublishedAt, &p.AuthorID, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt,
			&author.Name, &author.Image,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		author.ID = p.AuthorID
		p.Author = &author
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		tags, err := s.loadTags(items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Tags = tags
	}
	return items, nil
}

// Create inserts a post and its tag memberships in one transaction and
// returns the stored post with relations resolved.
func (s *PostStore) Create(p *models.Post, tagIDs []uuid.UUID) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		INSERT INTO posts (title, slug, content, excerpt, published, featured,
		                   published_at, author_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, p.Published, p.Featured,
		p.PublishedAt, p.AuthorID, p.CategoryID,
	)
	result, err := scanPost(row)
	if err != nil {
		return nil, translatePostWriteErr(err)
	}

	if err := insertTagLinks(tx, result.ID, tagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create post: %w", err)
	}

	if err := s.attachRelations(result); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces a post row and its whole tag set in one transaction and
// returns the stored post with relations resolved. The author column is
// never written.
func (s *PostStore) Update(p *models.Post, tagIDs []uuid.UUID) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		UPDATE posts SET
			title = $1, slug = $2, content = $3, excerpt = $4, published = $5,
			featured = $6, published_at = $7, category_id = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, p.Published, p.Featured,
		p.PublishedAt, p.CategoryID, p.ID,
	)
	result, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, translatePostWriteErr(err)
	}

	if _, err := tx.Exec(`DELETE FROM post_tags WHERE post_id = $1`, p.ID); err != nil {
		return nil, fmt.Errorf("clear post tags: %w", err)
	}
	if err := insertTagLinks(tx, p.ID, tagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update post: %w", err)
	}

	if err := s.attachRelations(result); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a post by ID. Tag-membership rows go with it
// (ON DELETE CASCADE); nothing else is touched.
func (s *PostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// insertTagLinks writes the post_tags membership rows inside tx.
func insertTagLinks(tx *sql.Tx, postID uuid.UUID, tagIDs []uuid.UUID) error {
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(`
			INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)
		`, postID, tagID); err != nil {
			return translatePostWriteErr(err)
		}
	}
	return nil
}

// attachRelations resolves the author, category, and tags for a post.
func (s *PostStore) attachRelations(p *models.Post) error {
	var author models.Author
	err := s.db.QueryRow(`
		SELECT id, name, image FROM users WHERE id = $1
	`, p.AuthorID).Scan(&author.ID, &author.Name, &author.Image)
	if err != nil {
		return fmt.Errorf("load post author: %w", err)
	}
	p.Author = &author

	if p.CategoryID != nil {
		row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, *p.CategoryID)
		category, err := scanCategory(row)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("load post category: %w", err)
		}
		p.Category = category
	}

	tags, err := s.loadTags(p.ID)
	if err != nil {
		return err
	}
	p.Tags = tags
	return nil
}

// loadTags returns a post's tags ordered by name.
func (s *PostStore) loadTags(postID uuid.UUID) ([]models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.slug, t.description, t.created_at, t.updated_at
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("load post tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// translatePostWriteErr maps constraint violations on post writes to the
// service errors the façade would have produced had it won the race.
func translatePostWriteErr(err error) error {
	switch pgErrCode(err) {
	case pgUniqueViolation:
		return blog.Conflict("A post with this title already exists")
	case pgForeignKeyViolation:
		return blog.Invalid("Post references a missing category or tag")
	}
	return fmt.Errorf("write post: %w", err)
}

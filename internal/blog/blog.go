// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog is the mutation façade for posts, categories, and tags.
// Every operation takes an explicit Actor and sequences authorization,
// slug resolution, publish-state handling, and the store write. All
// failures surface as typed *Error values; nothing is retried.
package blog

import (
	"time"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// PostStore is the persistence boundary for posts and their relations.
// Find methods return (nil, nil) when no row matches.
type PostStore interface {
	FindByID(id uuid.UUID) (*models.Post, error)
	FindBySlug(slug string) (*models.Post, error)
	FindPublishedBySlug(slug string) (*models.Post, error)
	ListPublished() ([]models.Post, error)
	ListByAuthor(authorID uuid.UUID) ([]models.Post, error)
	LatestByAuthor(authorID uuid.UUID) (*models.Post, error)
	Create(p *models.Post, tagIDs []uuid.UUID) (*models.Post, error)
	Update(p *models.Post, tagIDs []uuid.UUID) (*models.Post, error)
	Delete(id uuid.UUID) error
}

// CategoryStore is the persistence boundary for categories.
type CategoryStore interface {
	FindByID(id uuid.UUID) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	FindBySlugWithPosts(slug string) (*models.Category, error)
	List() ([]models.Category, error)
	Create(c *models.Category) (*models.Category, error)
	Update(c *models.Category) (*models.Category, error)
	Delete(id uuid.UUID) error
}

// TagStore is the persistence boundary for tags.
type TagStore interface {
	FindByID(id uuid.UUID) (*models.Tag, error)
	FindByIDs(ids []uuid.UUID) ([]models.Tag, error)
	FindBySlug(slug string) (*models.Tag, error)
	FindBySlugWithPosts(slug string) (*models.Tag, error)
	List() ([]models.Tag, error)
	Create(t *models.Tag) (*models.Tag, error)
	Update(t *models.Tag) (*models.Tag, error)
	Delete(id uuid.UUID) error
}

// UserStore is the persistence boundary for user profiles.
type UserStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
	UpdateProfile(u *models.User) (*models.User, error)
}

// Service orchestrates all content mutations. It is safe for concurrent
// use; each call is one synchronous unit of work against the stores.
type Service struct {
	posts      PostStore
	categories CategoryStore
	tags       TagStore
	users      UserStore

	// now is swapped out in tests for deterministic publish timestamps.
	now func() time.Time
}

// NewService creates the mutation façade over the given stores.
func NewService(posts PostStore, categories CategoryStore, tags TagStore, users UserStore) *Service {
	return &Service{
		posts:      posts,
		categories: categories,
		tags:       tags,
		users:      users,
		now:        time.Now,
	}
}

// dedupeIDs drops duplicate IDs while preserving first-seen order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

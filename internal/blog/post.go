// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/slug"
)

// CreatePost creates a post owned by the actor. The slug is derived from
// the title; a collision with any existing post slug is a Conflict, never
// silently disambiguated.
func (s *Service) CreatePost(actor Actor, in PostInput) (*models.Post, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	candidate := slug.Generate(in.Title)
	if candidate == "" {
		return nil, Invalid("Title must contain at least one letter or number")
	}
	existing, err := s.posts.FindBySlug(candidate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("A post with this title already exists")
	}

	tagIDs := dedupeIDs(in.TagIDs)
	if err := s.checkPostRefs(in.CategoryID, tagIDs); err != nil {
		return nil, err
	}

	p := &models.Post{
		Title:      in.Title,
		Slug:       candidate,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		Published:  in.Published,
		Featured:   in.Featured,
		AuthorID:   actor.ID,
		CategoryID: in.CategoryID,
	}
	p.PublishedAt = s.publishedAt(in.Published, nil)

	return s.posts.Create(p, tagIDs)
}

// UpdatePost replaces a post's content with the given payload. Only the
// owning author may update; the author itself never changes. The tag list
// is a whole-set replacement.
func (s *Service) UpdatePost(actor Actor, id uuid.UUID, in PostInput) (*models.Post, error) {
	post, err := s.ownedPost(actor, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	// Keep the slug when the title is unchanged so a post never collides
	// with itself.
	newSlug := post.Slug
	if in.Title != post.Title {
		newSlug = slug.Generate(in.Title)
		if newSlug == "" {
			return nil, Invalid("Title must contain at least one letter or number")
		}
	}
	if newSlug != post.Slug {
		existing, err := s.posts.FindBySlug(newSlug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, Conflict("A post with this title already exists")
		}
	}

	tagIDs := dedupeIDs(in.TagIDs)
	if err := s.checkPostRefs(in.CategoryID, tagIDs); err != nil {
		return nil, err
	}

	updated := &models.Post{
		ID:         post.ID,
		Title:      in.Title,
		Slug:       newSlug,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		Published:  in.Published,
		Featured:   in.Featured,
		AuthorID:   post.AuthorID,
		CategoryID: in.CategoryID,
	}
	updated.PublishedAt = s.publishedAt(in.Published, post.PublishedAt)

	result, err := s.posts.Update(updated, tagIDs)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// The post vanished between the ownership check and the write.
		return nil, NotFound("Post not found")
	}
	return result, nil
}

// DeletePost removes the actor's post and returns its last state. The
// store drops the post's tag-membership rows with it; nothing else is
// touched.
func (s *Service) DeletePost(actor Actor, id uuid.UUID) (*models.Post, error) {
	post, err := s.ownedPost(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Delete(id); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostBySlug resolves a published post for the public read path.
// Unpublished posts are never exposed here, regardless of actor.
func (s *Service) GetPostBySlug(slugStr string) (*models.Post, error) {
	post, err := s.posts.FindPublishedBySlug(slugStr)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NotFound("Post not found")
	}
	return post, nil
}

// GetPostByID fetches a post through the author-scoped path. Drafts are
// visible here, but only to their owner.
func (s *Service) GetPostByID(actor Actor, id uuid.UUID) (*models.Post, error) {
	return s.ownedPost(actor, id)
}

// ListPublishedPosts returns all published posts, newest first.
func (s *Service) ListPublishedPosts() ([]models.Post, error) {
	return s.posts.ListPublished()
}

// ListUserPosts returns all of the actor's posts, drafts included,
// newest first.
func (s *Service) ListUserPosts(actor Actor) ([]models.Post, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	return s.posts.ListByAuthor(actor.ID)
}

// LatestUserPost returns the actor's most recent post, or nil if they
// have none.
func (s *Service) LatestUserPost(actor Actor) (*models.Post, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	return s.posts.LatestByAuthor(actor.ID)
}

// ownedPost fetches a post and enforces that the actor owns it.
func (s *Service) ownedPost(actor Actor, id uuid.UUID) (*models.Post, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NotFound("Post not found")
	}
	if post.AuthorID != actor.ID {
		return nil, Forbidden("Not authorized")
	}
	return post, nil
}

// checkPostRefs rejects writes that reference a missing category or tags.
// The database enforces the same with foreign keys; checking here keeps
// the error user-addressable instead of a constraint violation.
func (s *Service) checkPostRefs(categoryID *uuid.UUID, tagIDs []uuid.UUID) error {
	if categoryID != nil {
		c, err := s.categories.FindByID(*categoryID)
		if err != nil {
			return err
		}
		if c == nil {
			return Invalid("Category does not exist")
		}
	}
	if len(tagIDs) > 0 {
		tags, err := s.tags.FindByIDs(tagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(tagIDs) {
			return Invalid("One or more tags do not exist")
		}
	}
	return nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/slug"
)

// CreateTag creates a tag with a slug derived from its name. Tags, like
// categories, are a shared taxonomy open to any authenticated user.
func (s *Service) CreateTag(actor Actor, in TagInput) (*models.Tag, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	candidate := slug.Generate(in.Name)
	if candidate == "" {
		return nil, Invalid("Name must contain at least one letter or number")
	}
	existing, err := s.tags.FindBySlug(candidate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("A tag with this name already exists")
	}

	return s.tags.Create(&models.Tag{
		Name:        in.Name,
		Slug:        candidate,
		Description: in.Description,
	})
}

// UpdateTag renames or re-describes a tag, re-resolving the slug when the
// name changed.
func (s *Service) UpdateTag(actor Actor, id uuid.UUID, in TagInput) (*models.Tag, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	tag, err := s.tags.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, NotFound("Tag not found")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	newSlug := tag.Slug
	if in.Name != tag.Name {
		newSlug = slug.Generate(in.Name)
		if newSlug == "" {
			return nil, Invalid("Name must contain at least one letter or number")
		}
	}
	if newSlug != tag.Slug {
		existing, err := s.tags.FindBySlug(newSlug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, Conflict("A tag with this name already exists")
		}
	}

	result, err := s.tags.Update(&models.Tag{
		ID:          tag.ID,
		Name:        in.Name,
		Slug:        newSlug,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, NotFound("Tag not found")
	}
	return result, nil
}

// DeleteTag removes a tag and returns its last state. Membership rows
// linking posts to the tag are dropped with it; the posts stay.
func (s *Service) DeleteTag(actor Actor, id uuid.UUID) (*models.Tag, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	tag, err := s.tags.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, NotFound("Tag not found")
	}
	if err := s.tags.Delete(id); err != nil {
		return nil, err
	}
	return tag, nil
}

// GetTagBySlug resolves a tag for the public read path, with its published
// posts included newest first.
func (s *Service) GetTagBySlug(slugStr string) (*models.Tag, error) {
	tag, err := s.tags.FindBySlugWithPosts(slugStr)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, NotFound("Tag not found")
	}
	return tag, nil
}

// ListTags returns all tags ordered by name.
func (s *Service) ListTags() ([]models.Tag, error) {
	return s.tags.List()
}

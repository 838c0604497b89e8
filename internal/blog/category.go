// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/slug"
)

// Categories are a shared taxonomy: any authenticated user may create,
// edit, or delete any category. There is deliberately no owner field.

// CreateCategory creates a category with a slug derived from its name.
func (s *Service) CreateCategory(actor Actor, in CategoryInput) (*models.Category, error) {
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
	existing, err := s.categories.FindBySlug(candidate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("A category with this name already exists")
	}

	return s.categories.Create(&models.Category{
		Name:        in.Name,
		Slug:        candidate,
		Description: in.Description,
	})
}

// UpdateCategory renames or re-describes a category. A rename regenerates
// the slug and re-checks uniqueness, unless the generated slug is unchanged.
func (s *Service) UpdateCategory(actor Actor, id uuid.UUID, in CategoryInput) (*models.Category, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NotFound("Category not found")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	newSlug := category.Slug
	if in.Name != category.Name {
		newSlug = slug.Generate(in.Name)
		if newSlug == "" {
			return nil, Invalid("Name must contain at least one letter or number")
		}
	}
	if newSlug != category.Slug {
		existing, err := s.categories.FindBySlug(newSlug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, Conflict("A category with this name already exists")
		}
	}

	result, err := s.categories.Update(&models.Category{
		ID:          category.ID,
		Name:        in.Name,
		Slug:        newSlug,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, NotFound("Category not found")
	}
	return result, nil
}

// DeleteCategory removes a category and returns its last state. Posts in
// the category are not deleted; their category reference becomes null
// (ON DELETE SET NULL at the store).
func (s *Service) DeleteCategory(actor Actor, id uuid.UUID) (*models.Category, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NotFound("Category not found")
	}
	if err := s.categories.Delete(id); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategoryBySlug resolves a category for the public read path, with its
// published posts included newest first.
func (s *Service) GetCategoryBySlug(slugStr string) (*models.Category, error) {
	category, err := s.categories.FindBySlugWithPosts(slugStr)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NotFound("Category not found")
	}
	return category, nil
}

// ListCategories returns all categories ordered by name, with post counts.
func (s *Service) ListCategories() ([]models.Category, error) {
	return s.categories.List()
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"github.com/google/uuid"

	"inkwell/internal/models"
)

// PostInput carries the full payload for creating or updating a post.
// Updates are whole replacements: the tag list supplied here fully replaces
// the post's previous tag set, and a nil CategoryID clears the category.
type PostInput struct {
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Excerpt    *string     `json:"excerpt,omitempty"`
	Published  bool        `json:"published"`
	Featured   bool        `json:"featured"`
	CategoryID *uuid.UUID  `json:"category_id,omitempty"`
	TagIDs     []uuid.UUID `json:"tag_ids,omitempty"`
}

// CategoryInput carries the payload for creating or updating a category.
type CategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// TagInput carries the payload for creating or updating a tag.
type TagInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ProfilePatch is a partial update of the acting user's profile. Each field
// is either present-with-value or absent: a nil pointer leaves the field
// untouched, a pointer to the empty string clears an optional field.
type ProfilePatch struct {
	Name        *string          `json:"name,omitempty"`
	Bio         *string          `json:"bio,omitempty"`
	Language    *models.Language `json:"language,omitempty"`
	Image       *string          `json:"image,omitempty"`
	GithubURL   *string          `json:"github_url,omitempty"`
	LinkedinURL *string          `json:"linkedin_url,omitempty"`
	TwitterURL  *string          `json:"twitter_url,omitempty"`
	Website     *string          `json:"website,omitempty"`
}

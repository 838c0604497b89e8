// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a single piece of published or draft content. The slug is unique
// among posts, the author never changes after creation, and PublishedAt
// records the first moment the post went live — it is never reset, even if
// the post is later unpublished. Display logic must treat Published as
// authoritative over a stale PublishedAt.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Virtual fields populated by store methods.
	Author   *Author   `json:"author,omitempty"`
	Category *Category `json:"category,omitempty"`
	Tags     []Tag     `json:"tags,omitempty"`
}

// IsDraft returns true if the post is not currently published.
func (p *Post) IsDraft() bool {
	return !p.Published
}

// TagIDs returns the IDs of the post's resolved tags.
func (p *Post) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.Tags))
	for i, t := range p.Tags {
		ids[i] = t.ID
	}
	return ids
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog"
	"inkwell/internal/markdown"
	"inkwell/internal/models"
)

// Public groups the unauthenticated read handlers. Only published posts
// are visible here; drafts never leave the author-scoped routes.
type Public struct {
	svc *blog.Service
}

// NewPublic creates a new Public handler group.
func NewPublic(svc *blog.Service) *Public {
	return &Public{svc: svc}
}

// postView is a published post plus its Markdown content rendered to HTML,
// so public clients don't need their own renderer.
type postView struct {
	*models.Post
	ContentHTML string `json:"content_html"`
}

// renderPost builds the public view of a post. Render failures fall back
// to an empty HTML body rather than failing the whole request.
func renderPost(post *models.Post) postView {
	htmlContent, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("markdown render failed", "post", post.ID, "error", err)
		htmlContent = ""
	}
	return postView{Post: post, ContentHTML: htmlContent}
}

// GetPost handles GET /api/public/posts/{slug}. Drafts 404 here even
// for their own author; the edit view goes through the authenticated API.
func (h *Public) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.GetPostBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, renderPost(post))
}

// ListPosts handles GET /api/public/posts: published posts, newest first.
func (h *Public) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPublishedPosts()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// ListCategories handles GET /api/public/categories: all categories in
// name order, each with its published-post count.
func (h *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cats)
}

// GetCategory handles GET /api/public/categories/{slug}: the category
// with its published posts attached.
func (h *Public) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := h.svc.GetCategoryBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// ListTags handles GET /api/public/tags.
func (h *Public) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tags)
}

// GetTag handles GET /api/public/tags/{slug}: the tag with its published
// posts attached.
func (h *Public) GetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.svc.GetTagBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkwell/internal/blog"
	"inkwell/internal/middleware"
)

// Posts groups the authenticated post-management handlers. All routes
// require a session; ownership checks happen in the service layer.
type Posts struct {
	svc *blog.Service
}

// NewPosts creates a new Posts handler group.
func NewPosts(svc *blog.Service) *Posts {
	return &Posts{svc: svc}
}

// Create handles POST /api/posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var in blog.PostInput
	if !decodeJSON(w, r, &in) {
		return
	}

	post, err := h.svc.CreatePost(middleware.ActorFromCtx(r.Context()), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// Update handles PUT /api/posts/{id}. The payload is a full replacement:
// the supplied tag list replaces the previous tag set.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in blog.PostInput
	if !decodeJSON(w, r, &in) {
		return
	}

	post, err := h.svc.UpdatePost(middleware.ActorFromCtx(r.Context()), id, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}. Returns the deleted post.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	post, err := h.svc.DeletePost(middleware.ActorFromCtx(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// Get handles GET /api/posts/{id}. Only the post's author can fetch it
// through this route; it is the edit-view lookup, drafts included.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	post, err := h.svc.GetPostByID(middleware.ActorFromCtx(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// ListMine handles GET /api/posts: every post by the acting user,
// drafts included, newest first.
func (h *Posts) ListMine(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListUserPosts(middleware.ActorFromCtx(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// LatestMine handles GET /api/posts/latest: the acting user's most
// recent post, or null if they have none.
func (h *Posts) LatestMine(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.LatestUserPost(middleware.ActorFromCtx(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

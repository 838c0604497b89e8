// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkwell/internal/blog"
	"inkwell/internal/middleware"
)

// Taxonomy groups the authenticated category and tag management handlers.
// Categories and tags are shared: any authenticated user may create,
// rename, or delete them regardless of who created them.
type Taxonomy struct {
	svc *blog.Service
}

// NewTaxonomy creates a new Taxonomy handler group.
func NewTaxonomy(svc *blog.Service) *Taxonomy {
	return &Taxonomy{svc: svc}
}

// CreateCategory handles POST /api/categories.
func (h *Taxonomy) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in blog.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}

	cat, err := h.svc.CreateCategory(middleware.ActorFromCtx(r.Context()), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cat)
}

// UpdateCategory handles PUT /api/categories/{id}.
func (h *Taxonomy) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in blog.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}

	cat, err := h.svc.UpdateCategory(middleware.ActorFromCtx(r.Context()), id, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// DeleteCategory handles DELETE /api/categories/{id}. Posts filed under
// the category survive with their category cleared.
func (h *Taxonomy) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	cat, err := h.svc.DeleteCategory(middleware.ActorFromCtx(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// CreateTag handles POST /api/tags.
func (h *Taxonomy) CreateTag(w http.ResponseWriter, r *http.Request) {
	var in blog.TagInput
	if !decodeJSON(w, r, &in) {
		return
	}

	tag, err := h.svc.CreateTag(middleware.ActorFromCtx(r.Context()), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

// UpdateTag handles PUT /api/tags/{id}.
func (h *Taxonomy) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in blog.TagInput
	if !decodeJSON(w, r, &in) {
		return
	}

	tag, err := h.svc.UpdateTag(middleware.ActorFromCtx(r.Context()), id, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

// DeleteTag handles DELETE /api/tags/{id}. Tagged posts survive; only
// the link rows go away.
func (h *Taxonomy) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	tag, err := h.svc.DeleteTag(middleware.ActorFromCtx(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

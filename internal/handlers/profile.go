// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkwell/internal/blog"
	"inkwell/internal/middleware"
)

// Profile groups the handlers for the acting user's own profile.
type Profile struct {
	svc *blog.Service
}

// NewProfile creates a new Profile handler group.
func NewProfile(svc *blog.Service) *Profile {
	return &Profile{svc: svc}
}

// Get handles GET /api/profile.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetProfile(middleware.ActorFromCtx(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Patch handles PATCH /api/profile. Absent fields keep their current
// value; fields set to the empty string are cleared.
func (h *Profile) Patch(w http.ResponseWriter, r *http.Request) {
	var patch blog.ProfilePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	user, err := h.svc.UpdateProfile(middleware.ActorFromCtx(r.Context()), patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"inkwell/internal/blog"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Admin groups the user-management handlers. All routes sit behind
// RequireAdmin in the router.
type Admin struct {
	userStore *store.UserStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(userStore *store.UserStore) *Admin {
	return &Admin{userStore: userStore}
}

// ListUsers handles GET /api/admin/users.
func (h *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// createUserRequest is the POST /api/admin/users payload.
type createUserRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
}

// CreateUser handles POST /api/admin/users.
func (h *Admin) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, blog.Invalid("Email, password, and name are required"))
		return
	}

	switch req.Role {
	case models.RoleUser, models.RoleAdmin, models.RoleModerator:
	case "":
		req.Role = models.RoleUser
	default:
		writeError(w, blog.Invalid("Invalid role"))
		return
	}

	user, err := h.userStore.Create(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		slog.Error("create user failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// ResetTwoFA handles POST /api/admin/users/{id}/reset-2fa. It clears the
// user's TOTP enrollment so they can re-enroll on next login.
func (h *Admin) ResetTwoFA(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.FindByID(id)
	if err != nil {
		slog.Error("user lookup failed", "error", err)
		writeError(w, err)
		return
	}
	if user == nil {
		writeError(w, blog.NotFound("User not found"))
		return
	}

	if err := h.userStore.ResetTOTP(id); err != nil {
		slog.Error("reset totp failed", "error", err)
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

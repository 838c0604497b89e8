// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API surface. Each handler group
// decodes the request, builds the acting identity from the session, calls
// the blog service, and maps service errors onto HTTP status codes.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/blog"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto an HTTP status and JSON body.
// Untyped errors are logged and returned as opaque 500s.
func writeError(w http.ResponseWriter, err error) {
	var body errorBody

	code := blog.CodeOf(err)
	if code == "" {
		slog.Error("unhandled error", "error", err)
		body.Error.Code = "INTERNAL"
		body.Error.Message = "An unexpected error occurred"
		writeJSON(w, http.StatusInternalServerError, body)
		return
	}

	body.Error.Code = string(code)
	body.Error.Message = err.Error()
	writeJSON(w, statusFor(code), body)
}

// statusFor translates a service error code into an HTTP status.
func statusFor(code blog.Code) int {
	switch code {
	case blog.CodeUnauthenticated:
		return http.StatusUnauthorized
	case blog.CodeForbidden:
		return http.StatusForbidden
	case blog.CodeNotFound:
		return http.StatusNotFound
	case blog.CodeConflict:
		return http.StatusConflict
	case blog.CodeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads the request body into dst, rejecting unknown malformed
// payloads with a 400. Returns false if decoding failed and a response
// has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeError(w, blog.Invalid("Invalid request body"))
		return false
	}
	return true
}

// urlID parses the {id} chi route parameter as a UUID.
func urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, blog.Invalid("Invalid ID"))
		return uuid.Nil, false
	}
	return id, true
}

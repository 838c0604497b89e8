// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"inkwell/internal/blog"
	"inkwell/internal/models"
	"inkwell/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for the session data.
	SessionKey contextKey = "session"
)

// LoadSession retrieves the session from Valkey and stores it in the
// request context. Downstream handlers can access it via SessionFromCtx()
// or ActorFromCtx(). This middleware does NOT enforce authentication —
// it just loads the session if one exists.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				// Log but don't block — treat as unauthenticated.
				next.ServeHTTP(w, r)
				return
			}

			if data != nil {
				ctx := context.WithValue(r.Context(), SessionKey, data)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects unauthenticated requests with a 401 JSON error.
// Must be applied after LoadSession in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess == nil {
			denyJSON(w, http.StatusUnauthorized, blog.CodeUnauthenticated, "You must be signed in")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Require2FA rejects users who enabled two-factor auth but have not
// verified a code this session. Must be applied after RequireAuth.
func Require2FA(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess != nil && !sess.TwoFADone {
			denyJSON(w, http.StatusUnauthorized, blog.CodeUnauthenticated, "Two-factor verification required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin returns 403 if the authenticated user is not an admin.
// Must be applied after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess == nil || sess.Role != string(models.RoleAdmin) {
			denyJSON(w, http.StatusForbidden, blog.CodeForbidden, "Not authorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded (user is not authenticated).
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}

// ActorFromCtx builds the acting identity for service calls from the
// request session. An anonymous actor (zero ID) is returned when no
// session is loaded.
func ActorFromCtx(ctx context.Context) blog.Actor {
	sess := SessionFromCtx(ctx)
	if sess == nil {
		return blog.Actor{}
	}
	return blog.Actor{ID: sess.UserID, Role: models.Role(sess.Role)}
}

// denyJSON writes a minimal JSON error body matching the API's error shape.
func denyJSON(w http.ResponseWriter, status int, code blog.Code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":{"code":"` + string(code) + `","message":"` + message + `"}}`))
}

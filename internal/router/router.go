// Package router sets up all HTTP routes and middleware chains for the
// Inkwell API. It organizes routes into public, authenticated, and admin
// groups with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(
	sessionStore *session.Store,
	auth *handlers.Auth,
	posts *handlers.Posts,
	taxonomy *handlers.Taxonomy,
	profile *handlers.Profile,
	public *handlers.Public,
	admin *handlers.Admin,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Authentication. Login is rate-limited to slow down credential
		// stuffing; the limiter is per-IP with a sliding window.
		loginLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Middleware).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)

			// 2FA — requires a session but NOT completed verification.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/2fa/setup", auth.TwoFASetup)
				r.With(loginLimiter.Middleware).Post("/2fa/verify", auth.TwoFAVerify)
			})
		})

		// Public reads — no session needed; drafts are invisible here.
		r.Route("/public", func(r chi.Router) {
			r.Get("/posts", public.ListPosts)
			r.Get("/posts/{slug}", public.GetPost)
			r.Get("/categories", public.ListCategories)
			r.Get("/categories/{slug}", public.GetCategory)
			r.Get("/tags", public.ListTags)
			r.Get("/tags/{slug}", public.GetTag)
		})

		// Authenticated + 2FA-verified content management.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", posts.ListMine)
				r.Post("/", posts.Create)
				r.Get("/latest", posts.LatestMine)
				r.Get("/{id}", posts.Get)
				r.Put("/{id}", posts.Update)
				r.Delete("/{id}", posts.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", taxonomy.CreateCategory)
				r.Put("/{id}", taxonomy.UpdateCategory)
				r.Delete("/{id}", taxonomy.DeleteCategory)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Post("/", taxonomy.CreateTag)
				r.Put("/{id}", taxonomy.UpdateTag)
				r.Delete("/{id}", taxonomy.DeleteTag)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profile.Get)
				r.Patch("/", profile.Patch)
			})

			// User management — admin only.
			r.Route("/admin/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.ListUsers)
				r.Post("/", admin.CreateUser)
				r.Post("/{id}/reset-2fa", admin.ResetTwoFA)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

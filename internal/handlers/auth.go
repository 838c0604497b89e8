// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"inkwell/internal/blog"
	"inkwell/internal/middleware"
	"inkwell/internal/session"
	"inkwell/internal/store"
)

// totpIssuer is the issuer label shown in authenticator apps.
const totpIssuer = "Inkwell"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

// loginRequest is the POST /api/auth/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse tells the client where to go next: straight in, or
// through 2FA setup/verification first.
type loginResponse struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	TwoFARequired bool   `json:"two_fa_required"`
	TwoFAEnrolled bool   `json:"two_fa_enrolled"`
}

// Login verifies credentials and starts a session. The session begins
// with TwoFADone=false; users who enabled 2FA must verify a code before
// the API accepts authenticated calls.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, err)
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		writeError(w, blog.Invalid("Invalid email or password"))
		return
	}

	// Users without 2FA enrolled skip verification entirely.
	twoFADone := !user.TOTPEnabled

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		TwoFADone: twoFADone,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		UserID:        user.ID.String(),
		Name:          user.Name,
		Role:          string(user.Role),
		TwoFARequired: user.TOTPEnabled,
		TwoFAEnrolled: user.TOTPEnabled,
	})
}

// twoFASetupResponse carries the enrollment material: the shared secret
// for manual entry and a QR code PNG for authenticator apps.
type twoFASetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"` // base64-encoded PNG
}

// TwoFASetup generates a fresh TOTP secret for the logged-in user and
// returns it with a QR code. The secret only becomes active after the
// user verifies a code via TwoFAVerify.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, err)
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, twoFASetupResponse{
		Secret: key.Secret(),
		QRCode: base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// twoFAVerifyRequest is the POST /api/auth/2fa/verify payload.
type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify validates a TOTP code. On first-time setup it activates
// 2FA for the account; in both cases it marks the session as verified.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req twoFAVerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		writeError(w, err)
		return
	}
	if user == nil || user.TOTPSecret == nil {
		writeError(w, blog.Invalid("Two-factor authentication is not set up"))
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, blog.Invalid("Invalid code"))
		return
	}

	// First successful verification activates 2FA for the account.
	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeError(w, err)
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"verified": true})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the session identity, or 401 when unauthenticated.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, blog.Unauthenticated())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": sess.UserID,
		"email":   sess.Email,
		"name":    sess.Name,
		"role":    sess.Role,
	})
}

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the system.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
)

// Language is the user's preferred reading language.
type Language string

const (
	LanguageEnglish     Language = "ENGLISH"
	LanguageAmharic     Language = "AMHARIC"
	LanguageAfaanOromoo Language = "AFAAN_OROMOO"
)

// User represents an account that authors posts and manages taxonomy.
// Profile fields are nullable; only the owning user may change them.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Language     Language  `json:"language"`
	Bio          *string   `json:"bio,omitempty"`
	Image        *string   `json:"image,omitempty"`
	GithubURL    *string   `json:"github_url,omitempty"`
	LinkedinURL  *string   `json:"linkedin_url,omitempty"`
	TwitterURL   *string   `json:"twitter_url,omitempty"`
	Website      *string   `json:"website,omitempty"`
	TOTPSecret   *string   `json:"-"` // Nullable; set during 2FA setup
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Needs2FASetup returns true if the user has not completed 2FA enrollment.
// A user needs setup if they have no secret, or have a secret but never verified.
func (u *User) Needs2FASetup() bool {
	return u.TOTPSecret == nil || !u.TOTPEnabled
}

// Author is the public projection of a User attached to posts.
// Only fields safe to expose on the public read path appear here.
type Author struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}

// AuthorView returns the public author projection for this user.
func (u *User) AuthorView() Author {
	return Author{ID: u.ID, Name: u.Name, Image: u.Image}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"inkwell/internal/models"
)

// Validation limits for user-supplied fields. Checked before any store
// access; a rejected payload leaves the store completely untouched.
const (
	maxPostTitleLen    = 100
	maxExcerptLen      = 300
	maxCategoryNameLen = 50
	maxTagNameLen      = 30
	maxDescriptionLen  = 300
	maxProfileNameLen  = 50
	maxBioLen          = 300
)

// validate checks post field constraints and returns the first error found.
func (in *PostInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return Invalid("Title is required")
	}
	if utf8.RuneCountInString(in.Title) > maxPostTitleLen {
		return Invalid("Title is too long")
	}
	if in.Excerpt != nil && utf8.RuneCountInString(*in.Excerpt) > maxExcerptLen {
		return Invalid("Excerpt must be less than 300 characters")
	}
	if strings.TrimSpace(in.Content) == "" {
		return Invalid("Content is required")
	}
	return nil
}

// validate checks category field constraints.
func (in *CategoryInput) validate() error {
	return validateName(in.Name, in.Description, maxCategoryNameLen)
}

// validate checks tag field constraints.
func (in *TagInput) validate() error {
	return validateName(in.Name, in.Description, maxTagNameLen)
}

func validateName(name string, description *string, maxLen int) error {
	if strings.TrimSpace(name) == "" {
		return Invalid("Name is required")
	}
	if utf8.RuneCountInString(name) > maxLen {
		return Invalid("Name is too long")
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		return Invalid("Description must be less than 300 characters")
	}
	return nil
}

// validate checks profile patch constraints. Absent fields are skipped;
// URL fields accept the empty string, which clears them.
func (p *ProfilePatch) validate() error {
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return Invalid("Name is required")
		}
		if utf8.RuneCountInString(*p.Name) > maxProfileNameLen {
			return Invalid("Name is too long")
		}
	}
	if p.Bio != nil && utf8.RuneCountInString(*p.Bio) > maxBioLen {
		return Invalid("Bio must be less than 300 characters")
	}
	if p.Language != nil {
		switch *p.Language {
		case models.LanguageEnglish, models.LanguageAmharic, models.LanguageAfaanOromoo:
		default:
			return Invalid("Unsupported language")
		}
	}
	for _, u := range []*string{p.Image, p.GithubURL, p.LinkedinURL, p.TwitterURL, p.Website} {
		if u != nil && *u != "" && !validURL(*u) {
			return Invalid("Invalid URL")
		}
	}
	return nil
}

// validURL accepts absolute http(s) URLs only.
func validURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

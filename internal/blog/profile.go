// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import "inkwell/internal/models"

// GetProfile returns the acting user's own record.
func (s *Service) GetProfile(actor Actor) (*models.User, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	user, err := s.users.FindByID(actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User not found")
	}
	return user, nil
}

// UpdateProfile applies a partial profile update to the acting user. Only
// the owner can reach their profile — the actor is the target. Absent
// patch fields are left as they are; optional fields patched to "" are
// cleared.
func (s *Service) UpdateProfile(actor Actor, patch ProfilePatch) (*models.User, error) {
	if actor.Anonymous() {
		return nil, Unauthenticated()
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("User not found")
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Language != nil {
		user.Language = *patch.Language
	}
	applyOptional(&user.Bio, patch.Bio)
	applyOptional(&user.Image, patch.Image)
	applyOptional(&user.GithubURL, patch.GithubURL)
	applyOptional(&user.LinkedinURL, patch.LinkedinURL)
	applyOptional(&user.TwitterURL, patch.TwitterURL)
	applyOptional(&user.Website, patch.Website)

	result, err := s.users.UpdateProfile(user)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, NotFound("User not found")
	}
	return result, nil
}

// applyOptional writes a patched optional field: nil patch means keep,
// empty string means clear.
func applyOptional(field **string, patch *string) {
	if patch == nil {
		return
	}
	if *patch == "" {
		*field = nil
		return
	}
	v := *patch
	*field = &v
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"github.com/google/uuid"

	"inkwell/internal/models"
)

// Actor is the authenticated identity attempting an operation. It is passed
// explicitly to every service call; there is no ambient request identity.
// The zero value is the anonymous actor.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

// Anonymous reports whether the actor is unauthenticated.
func (a Actor) Anonymous() bool {
	return a.ID == uuid.Nil
}

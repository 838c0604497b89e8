// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import "time"

// publishedAt computes a post's publish timestamp for a write.
//
// The marker is set exactly once, the first time published flips to true.
// Re-publishing keeps the original timestamp, and unpublishing does not
// clear it: PublishedAt stays behind as a "first published at" record while
// the Published flag alone decides visibility.
func (s *Service) publishedAt(published bool, current *time.Time) *time.Time {
	if published && current == nil {
		now := s.now()
		return &now
	}
	return current
}

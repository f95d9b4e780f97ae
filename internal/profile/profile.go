// Package profile holds the single local user identity for a session and
// its derived aggregates over the catalog.
package profile

import (
	"strings"
	"time"

	"github.com/casttivi/casttivi/internal/models"
	"github.com/google/uuid"
)

// Store owns the session's UserProfile. There is exactly one per session;
// it is created at startup and mutated in place by the profile form.
type Store struct {
	user models.UserProfile
}

// NewStore creates the demo profile used for the session.
func NewStore() *Store {
	username := "Алексей Смирнов"
	return &Store{
		user: models.UserProfile{
			ID:            uuid.NewString(),
			Username:      username,
			Email:         "alexey@casttivi.example",
			AvatarInitial: models.AvatarInitials(username),
			Bio:           "Записываю подкасты о технологиях и науке",
			JoinedDate:    time.Now(),
		},
	}
}

// User returns a copy of the current profile.
func (s *Store) User() models.UserProfile {
	return s.user
}

// Update replaces username, email and bio in place. ID, avatar initial and
// joined date never change after construction.
func (s *Store) Update(username, email, bio string) {
	s.user.Username = strings.TrimSpace(username)
	s.user.Email = strings.TrimSpace(email)
	s.user.Bio = strings.TrimSpace(bio)
}

// Stats are the aggregates shown on the profile screen.
type Stats struct {
	PodcastCount int
	TotalViews   int
	TotalLikes   int
}

// Stats folds over the given records counting the ones authored by this
// profile. It is recomputed on every call; the counts are the records' own
// stored counters, not the viewer's reactions.
func (s *Store) Stats(records []*models.Podcast) Stats {
	var st Stats
	for _, rec := range records {
		if rec.AuthorID != s.user.ID {
			continue
		}
		st.PodcastCount++
		st.TotalViews += rec.ViewCount
		st.TotalLikes += rec.LikeCount
	}
	return st
}

package profile

import (
	"testing"

	"github.com/casttivi/casttivi/internal/models"
)

func TestNewStore(t *testing.T) {
	s := NewStore()
	user := s.User()

	if user.ID == "" {
		t.Error("Profile must have an id")
	}
	if user.Username == "" || user.AvatarInitial == "" {
		t.Errorf("Profile missing identity fields: %+v", user)
	}
	if user.JoinedDate.IsZero() {
		t.Error("JoinedDate should be set")
	}
}

func TestUpdate_ReplacesEditableFields(t *testing.T) {
	s := NewStore()
	before := s.User()

	s.Update("  Новое Имя ", "new@example.com", " Новая биография ")
	after := s.User()

	if after.Username != "Новое Имя" {
		t.Errorf("Username = %q", after.Username)
	}
	if after.Email != "new@example.com" {
		t.Errorf("Email = %q", after.Email)
	}
	if after.Bio != "Новая биография" {
		t.Errorf("Bio = %q", after.Bio)
	}

	// Immutable fields stay put.
	if after.ID != before.ID {
		t.Error("Update must not change the id")
	}
	if after.AvatarInitial != before.AvatarInitial {
		t.Error("Update must not change the avatar initial")
	}
	if !after.JoinedDate.Equal(before.JoinedDate) {
		t.Error("Update must not change the joined date")
	}
}

func TestStats_FoldsOwnRecordsOnly(t *testing.T) {
	s := NewStore()
	me := s.User().ID

	records := []*models.Podcast{
		{ID: 1, AuthorID: me, ViewCount: 100, LikeCount: 10},
		{ID: 2, AuthorID: "someone-else", ViewCount: 999, LikeCount: 99},
		{ID: 3, AuthorID: me, ViewCount: 50, LikeCount: 5},
	}

	st := s.Stats(records)
	if st.PodcastCount != 2 {
		t.Errorf("PodcastCount = %d, expected 2", st.PodcastCount)
	}
	if st.TotalViews != 150 {
		t.Errorf("TotalViews = %d, expected 150", st.TotalViews)
	}
	if st.TotalLikes != 15 {
		t.Errorf("TotalLikes = %d, expected 15", st.TotalLikes)
	}
}

func TestStats_EmptyCatalog(t *testing.T) {
	s := NewStore()

	st := s.Stats(nil)
	if st != (Stats{}) {
		t.Errorf("Expected zero stats, got %+v", st)
	}
}

func TestStats_RecomputedOnEveryRead(t *testing.T) {
	s := NewStore()
	me := s.User().ID

	records := []*models.Podcast{{ID: 1, AuthorID: me, ViewCount: 1, LikeCount: 1}}
	if s.Stats(records).PodcastCount != 1 {
		t.Fatal("Expected one owned record")
	}

	records = append(records, &models.Podcast{ID: 2, AuthorID: me, ViewCount: 2, LikeCount: 2})
	st := s.Stats(records)
	if st.PodcastCount != 2 || st.TotalViews != 3 || st.TotalLikes != 3 {
		t.Errorf("Stats not derived from the current catalog: %+v", st)
	}
}

package catalog

import (
	"testing"

	"github.com/casttivi/casttivi/internal/models"
)

func testStore() *Store {
	return NewStore([]*models.Podcast{
		{ID: 1, Title: "Квантовая физика", Author: "Александр Иванов", AuthorID: "a1", Category: "Наука"},
		{ID: 2, Title: "История музыки", Author: "Мария Соколова", AuthorID: "a2", Category: "Музыка"},
		{ID: 3, Title: "Космос: новые открытия", Author: "Игорь Новиков", AuthorID: "a3", Category: "Наука"},
	})
}

func ids(records []*models.Podcast) []int64 {
	out := make([]int64, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func TestAdd_Prepends(t *testing.T) {
	s := testStore()
	s.Add(&models.Podcast{ID: 99, Title: "Новый"})

	got := ids(s.All())
	want := []int64{99, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected id %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRemove(t *testing.T) {
	s := testStore()

	if !s.Remove(2) {
		t.Error("Expected Remove(2) to report a removal")
	}

	got := ids(s.All())
	want := []int64{1, 3}
	if len(got) != len(want) {
		t.Fatalf("Expected %d records after remove, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected id %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	s := testStore()

	if s.Remove(42) {
		t.Error("Remove of unknown id should report no removal")
	}
	if s.Len() != 3 {
		t.Errorf("Expected catalog unchanged, got %d records", s.Len())
	}
}

func TestSearch_EmptyQueryReturnsAllInOrder(t *testing.T) {
	s := testStore()

	for _, query := range []string{"", "   "} {
		got := ids(s.Search(query))
		want := []int64{1, 2, 3}
		if len(got) != len(want) {
			t.Fatalf("Search(%q): expected %d records, got %d", query, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Search(%q) position %d: expected id %d, got %d", query, i, want[i], got[i])
			}
		}
	}
}

func TestSearch_CategoryCaseInsensitive(t *testing.T) {
	s := testStore()

	for _, query := range []string{"Наука", "наука", "НАУКА"} {
		got := ids(s.Search(query))
		want := []int64{1, 3}
		if len(got) != len(want) {
			t.Fatalf("Search(%q): expected %v, got %v", query, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Search(%q): expected %v, got %v", query, want, got)
			}
		}
	}
}

func TestSearch_MatchesAnyOfTitleAuthorCategory(t *testing.T) {
	s := testStore()

	tests := []struct {
		query string
		want  []int64
	}{
		{"космос", []int64{3}},         // title
		{"соколова", []int64{2}},       // author
		{"музыка", []int64{2}},         // category OR title
		{"nothing here", nil},          // no match
	}

	for _, tc := range tests {
		got := ids(s.Search(tc.query))
		if len(got) != len(tc.want) {
			t.Errorf("Search(%q) = %v, expected %v", tc.query, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("Search(%q) = %v, expected %v", tc.query, got, tc.want)
			}
		}
	}
}

func TestByAuthor(t *testing.T) {
	s := testStore()
	s.Add(&models.Podcast{ID: 4, Title: "Ещё один", AuthorID: "a1"})

	got := ids(s.ByAuthor("a1"))
	want := []int64{4, 1}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}

	if len(s.ByAuthor("missing")) != 0 {
		t.Error("Unknown author should match nothing")
	}
}

func TestGet(t *testing.T) {
	s := testStore()

	if rec := s.Get(2); rec == nil || rec.ID != 2 {
		t.Errorf("Get(2) = %+v, expected record 2", rec)
	}
	if rec := s.Get(42); rec != nil {
		t.Errorf("Get(42) = %+v, expected nil", rec)
	}
}

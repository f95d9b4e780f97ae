package models

import "testing"

func TestNextRecordID_UniqueInSession(t *testing.T) {
	seen := make(map[int64]bool)

	for i := 0; i < 1000; i++ {
		id := NextRecordID()
		if seen[id] {
			t.Fatalf("NextRecordID returned duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestNextRecordID_Monotonic(t *testing.T) {
	prev := NextRecordID()
	for i := 0; i < 100; i++ {
		id := NextRecordID()
		if id <= prev {
			t.Errorf("Expected strictly increasing ids, got %d after %d", id, prev)
		}
		prev = id
	}
}

func TestAvatarInitials(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Александр Иванов", "АИ"},
		{"Мария Соколова", "МС"},
		{"madonna", "M"},
		{"", ""},
		{"  spaced   out  name ", "SO"},
	}

	for _, tc := range tests {
		if got := AvatarInitials(tc.name); got != tc.expected {
			t.Errorf("AvatarInitials(%q) = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestSeedCatalog(t *testing.T) {
	records := SeedCatalog()

	if len(records) != 6 {
		t.Fatalf("Expected 6 seed records, got %d", len(records))
	}

	seen := make(map[int64]bool)
	for _, rec := range records {
		if seen[rec.ID] {
			t.Errorf("Duplicate seed record id %d", rec.ID)
		}
		seen[rec.ID] = true

		if rec.AuthorID == "" {
			t.Errorf("Record %q has empty author id", rec.Title)
		}
		if rec.AvatarInitial == "" {
			t.Errorf("Record %q has empty avatar initial", rec.Title)
		}
		if rec.ViewCount < 0 || rec.LikeCount < 0 {
			t.Errorf("Record %q has negative counters", rec.Title)
		}
	}
}

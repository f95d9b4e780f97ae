// Package catalog holds the ordered in-memory collection of podcast
// records for a session and its filtered views.
package catalog

import (
	"strings"

	"github.com/casttivi/casttivi/internal/models"
)

// Store keeps records in insertion order. New records are prepended, so
// the newest upload is always first without any sort key.
type Store struct {
	records []*models.Podcast
}

// NewStore creates a store pre-populated with the given records.
func NewStore(records []*models.Podcast) *Store {
	return &Store{records: records}
}

// Add prepends a record to the catalog.
func (s *Store) Add(rec *models.Podcast) {
	s.records = append([]*models.Podcast{rec}, s.records...)
}

// Remove deletes the record with the given id. Removing an unknown id is
// a no-op. Returns whether a record was removed.
func (s *Store) Remove(id int64) bool {
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record with the given id, or nil.
func (s *Store) Get(id int64) *models.Podcast {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

func (s *Store) Len() int {
	return len(s.records)
}

// All returns the full catalog in store order.
func (s *Store) All() []*models.Podcast {
	out := make([]*models.Podcast, len(s.records))
	copy(out, s.records)
	return out
}

// Filter returns the records matching pred, preserving store order.
func (s *Store) Filter(pred func(*models.Podcast) bool) []*models.Podcast {
	var out []*models.Podcast
	for _, rec := range s.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Search returns the records whose title, author or category contains the
// query, case-insensitively. An empty or whitespace-only query matches
// everything.
func (s *Store) Search(query string) []*models.Podcast {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.All()
	}

	return s.Filter(func(rec *models.Podcast) bool {
		return strings.Contains(strings.ToLower(rec.Title), query) ||
			strings.Contains(strings.ToLower(rec.Author), query) ||
			strings.Contains(strings.ToLower(rec.Category), query)
	})
}

// ByAuthor returns the records owned by the given author id in store
// order. This backs the "my podcasts" view.
func (s *Store) ByAuthor(authorID string) []*models.Podcast {
	return s.Filter(func(rec *models.Podcast) bool {
		return rec.AuthorID == authorID
	})
}

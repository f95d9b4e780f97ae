package models

import (
	"strings"
	"sync"
	"time"
)

// Podcast is a single catalog record. Records are immutable after creation;
// ViewCount and LikeCount are the record's own stored counters, independent
// of any viewer's reaction state.
type Podcast struct {
	ID            int64
	Title         string
	Author        string
	AuthorID      string
	AvatarInitial string
	Category      string
	ColorTheme    string
	DurationLabel string
	ViewCount     int
	LikeCount     int
	Rating        float64
	AudioURL      string
	UploadedAt    time.Time
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NextRecordID returns a time-based identifier that is unique for the
// lifetime of the session, even when two records are created within the
// same clock tick.
func NextRecordID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixNano()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// AvatarInitials derives a short avatar label from a display name: the
// first rune of each of the first two words, uppercased.
func AvatarInitials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		initials = append(initials, runes[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

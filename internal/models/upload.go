package models

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingTitle    = errors.New("upload requires a title")
	ErrMissingCategory = errors.New("upload requires a category")
)

// NewUpload constructs a fresh catalog record from user-entered form fields.
// Title and category must contain something other than whitespace; the
// remaining fields may be empty. Author identity is copied from the profile
// so the record shows up in the owner's "my podcasts" view.
func NewUpload(owner UserProfile, title, category, durationLabel, colorTheme string) (*Podcast, error) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)

	if title == "" {
		return nil, ErrMissingTitle
	}
	if category == "" {
		return nil, ErrMissingCategory
	}

	return &Podcast{
		ID:            NextRecordID(),
		Title:         title,
		Author:        owner.Username,
		AuthorID:      owner.ID,
		AvatarInitial: owner.AvatarInitial,
		Category:      category,
		ColorTheme:    colorTheme,
		DurationLabel: strings.TrimSpace(durationLabel),
		ViewCount:     0,
		LikeCount:     0,
		Rating:        5.0,
		UploadedAt:    time.Now(),
	}, nil
}

package models

import "time"

// UserProfile is the single local identity for a session. ID,
// AvatarInitial and JoinedDate are fixed at construction; the rest is
// editable through the profile form.
type UserProfile struct {
	ID            string
	Username      string
	Email         string
	AvatarInitial string
	Bio           string
	JoinedDate    time.Time
}

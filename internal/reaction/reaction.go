// Package reaction tracks a viewer's like/dislike/subscribe toggles for
// the current session. Reactions never touch the records' own counters.
package reaction

// Reactions holds the three membership sets. The type maintains the
// invariant that no id is ever liked and disliked at the same time:
// activating one side unconditionally discards the id from the other.
type Reactions struct {
	liked      map[int64]struct{}
	disliked   map[int64]struct{}
	subscribed map[string]struct{}
}

func New() *Reactions {
	return &Reactions{
		liked:      make(map[int64]struct{}),
		disliked:   make(map[int64]struct{}),
		subscribed: make(map[string]struct{}),
	}
}

// ToggleLike flips the like membership for id and returns the new state.
// When the like is activated, any dislike for the same id is cleared.
func (r *Reactions) ToggleLike(id int64) bool {
	if _, ok := r.liked[id]; ok {
		delete(r.liked, id)
		return false
	}
	r.liked[id] = struct{}{}
	delete(r.disliked, id)
	return true
}

// ToggleDislike is the mirror of ToggleLike.
func (r *Reactions) ToggleDislike(id int64) bool {
	if _, ok := r.disliked[id]; ok {
		delete(r.disliked, id)
		return false
	}
	r.disliked[id] = struct{}{}
	delete(r.liked, id)
	return true
}

// ToggleSubscription flips the subscription for an author name. It has no
// interaction with the like/dislike sets.
func (r *Reactions) ToggleSubscription(author string) bool {
	if _, ok := r.subscribed[author]; ok {
		delete(r.subscribed, author)
		return false
	}
	r.subscribed[author] = struct{}{}
	return true
}

func (r *Reactions) IsLiked(id int64) bool {
	_, ok := r.liked[id]
	return ok
}

func (r *Reactions) IsDisliked(id int64) bool {
	_, ok := r.disliked[id]
	return ok
}

func (r *Reactions) IsSubscribed(author string) bool {
	_, ok := r.subscribed[author]
	return ok
}

func (r *Reactions) LikedCount() int {
	return len(r.liked)
}

func (r *Reactions) SubscriptionCount() int {
	return len(r.subscribed)
}

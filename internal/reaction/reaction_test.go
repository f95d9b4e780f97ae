package reaction

import "testing"

func TestToggleLike_RoundTrip(t *testing.T) {
	r := New()

	if !r.ToggleLike(1) {
		t.Error("First toggle should activate the like")
	}
	if !r.IsLiked(1) {
		t.Error("Expected id 1 to be liked")
	}

	if r.ToggleLike(1) {
		t.Error("Second toggle should deactivate the like")
	}
	if r.IsLiked(1) {
		t.Error("Expected id 1 back to un-liked after round trip")
	}
}

func TestToggleDislike_RoundTrip(t *testing.T) {
	r := New()

	if !r.ToggleDislike(7) {
		t.Error("First toggle should activate the dislike")
	}
	if r.ToggleDislike(7) {
		t.Error("Second toggle should deactivate the dislike")
	}
	if r.IsDisliked(7) {
		t.Error("Expected id 7 back to un-disliked after round trip")
	}
}

func TestLike_ClearsDislike(t *testing.T) {
	r := New()

	r.ToggleDislike(3)
	r.ToggleLike(3)

	if !r.IsLiked(3) {
		t.Error("Expected id 3 liked")
	}
	if r.IsDisliked(3) {
		t.Error("Like activation must clear the dislike for the same id")
	}
}

func TestDislike_ClearsLike(t *testing.T) {
	r := New()

	r.ToggleLike(3)
	r.ToggleDislike(3)

	if !r.IsDisliked(3) {
		t.Error("Expected id 3 disliked")
	}
	if r.IsLiked(3) {
		t.Error("Dislike activation must clear the like for the same id")
	}
}

func TestMutualExclusion_HoldsUnderInterleaving(t *testing.T) {
	r := New()

	// Arbitrary interleaving across a few ids; after every step no id may
	// be in both sets.
	ops := []struct {
		like bool
		id   int64
	}{
		{true, 1}, {false, 1}, {true, 2}, {false, 2}, {false, 1},
		{true, 1}, {true, 1}, {false, 2}, {true, 2}, {false, 1},
	}

	for i, op := range ops {
		if op.like {
			r.ToggleLike(op.id)
		} else {
			r.ToggleDislike(op.id)
		}
		for _, id := range []int64{1, 2} {
			if r.IsLiked(id) && r.IsDisliked(id) {
				t.Fatalf("After op %d: id %d is both liked and disliked", i, id)
			}
		}
	}
}

func TestToggleSubscription(t *testing.T) {
	r := New()

	if !r.ToggleSubscription("Мария Соколова") {
		t.Error("First toggle should subscribe")
	}
	if !r.IsSubscribed("Мария Соколова") {
		t.Error("Expected author subscribed")
	}
	if r.ToggleSubscription("Мария Соколова") {
		t.Error("Second toggle should unsubscribe")
	}
	if r.IsSubscribed("Мария Соколова") {
		t.Error("Expected author unsubscribed after round trip")
	}
}

func TestSubscription_IndependentOfLikes(t *testing.T) {
	r := New()

	r.ToggleLike(1)
	r.ToggleSubscription("Автор")
	r.ToggleDislike(1)

	if !r.IsSubscribed("Автор") {
		t.Error("Subscription must be unaffected by like/dislike toggles")
	}
}

func TestCounts(t *testing.T) {
	r := New()

	r.ToggleLike(1)
	r.ToggleLike(2)
	r.ToggleDislike(2) // moves 2 out of liked
	r.ToggleSubscription("a")
	r.ToggleSubscription("b")

	if r.LikedCount() != 1 {
		t.Errorf("LikedCount = %d, expected 1", r.LikedCount())
	}
	if r.SubscriptionCount() != 2 {
		t.Errorf("SubscriptionCount = %d, expected 2", r.SubscriptionCount())
	}
}

package player

import (
	"sync"
	"testing"
	"time"

	"github.com/casttivi/casttivi/internal/models"
)

// fakeResource records transport commands and lets tests inject events.
type fakeResource struct {
	mu      sync.Mutex
	loaded  string
	playing bool
	seeks   []time.Duration
	volumes []int
	events  chan Event
}

func newFakeResource() *fakeResource {
	return &fakeResource{events: make(chan Event, 8)}
}

func (f *fakeResource) Load(source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = source
	f.playing = false
	return nil
}

func (f *fakeResource) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = true
	return nil
}

func (f *fakeResource) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = false
	return nil
}

func (f *fakeResource) SeekTo(position time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeks = append(f.seeks, position)
	return nil
}

func (f *fakeResource) SetVolume(percent int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volumes = append(f.volumes, percent)
	return nil
}

func (f *fakeResource) Stop() error { return nil }

func (f *fakeResource) Events() <-chan Event { return f.events }

func (f *fakeResource) lastSeek(t *testing.T) time.Duration {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.seeks) == 0 {
		t.Fatal("Expected at least one seek command")
	}
	return f.seeks[len(f.seeks)-1]
}

func (f *fakeResource) isPlaying() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing
}

func testRecord() *models.Podcast {
	return &models.Podcast{ID: 1, Title: "Test", AudioURL: "https://example.com/a.mp3"}
}

// inject sends an event and waits until the controller applied it.
func inject(t *testing.T, c *Controller, f *fakeResource, ev Event) {
	t.Helper()
	applied := make(chan struct{})
	c.SetOnUpdate(func() { close(applied) })
	f.events <- ev
	select {
	case <-applied:
	case <-time.After(time.Second):
		t.Fatal("Controller did not apply injected event")
	}
	c.SetOnUpdate(nil)
}

func TestBind_ResetsState(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)

	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	st := c.Snapshot()
	if st.Playing {
		t.Error("Bind must not start playback")
	}
	if st.Position != 0 || st.Duration != 0 {
		t.Errorf("Expected zeroed position/duration, got %v/%v", st.Position, st.Duration)
	}
	if f.loaded != "https://example.com/a.mp3" {
		t.Errorf("Resource loaded %q", f.loaded)
	}
}

func TestTogglePlayPause_RoundTrip(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	c.TogglePlayPause()
	if !c.Snapshot().Playing || !f.isPlaying() {
		t.Error("First toggle should start playback")
	}

	c.TogglePlayPause()
	if c.Snapshot().Playing || f.isPlaying() {
		t.Error("Second toggle should pause playback")
	}
}

func TestTransport_NoopsWithoutBinding(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)

	c.TogglePlayPause()
	c.SeekRelative(10 * time.Second)
	c.SeekAbsolute(5 * time.Second)

	if c.Snapshot().Playing {
		t.Error("Toggle with nothing bound must be a no-op")
	}
	if len(f.seeks) != 0 {
		t.Error("Seek with nothing bound must not reach the resource")
	}
}

func TestTransport_NoopsForRecordWithoutAudio(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)

	if err := c.Bind(&models.Podcast{ID: 2, Title: "No audio"}); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	c.TogglePlayPause()

	if c.Snapshot().Playing {
		t.Error("Record without an audio source must not start playback")
	}
	if f.loaded != "" {
		t.Error("Resource must not be loaded for a source-less record")
	}
}

func TestSeekRelative_ClampsToZero(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	inject(t, c, f, Event{Kind: EventDuration, Duration: 60 * time.Second})
	inject(t, c, f, Event{Kind: EventProgress, Position: 5 * time.Second, Duration: 60 * time.Second})

	c.SeekRelative(-10 * time.Second)

	if got := f.lastSeek(t); got != 0 {
		t.Errorf("Expected seek clamped to 0, got %v", got)
	}
	if st := c.Snapshot(); st.Position != 0 {
		t.Errorf("Expected position 0, got %v", st.Position)
	}
}

func TestSeekRelative_ClampsToDuration(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	inject(t, c, f, Event{Kind: EventProgress, Position: 55 * time.Second, Duration: 60 * time.Second})

	c.SeekRelative(30 * time.Second)

	if got := f.lastSeek(t); got != 60*time.Second {
		t.Errorf("Expected seek clamped to duration, got %v", got)
	}
}

func TestSeekAbsolute_Clamps(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	inject(t, c, f, Event{Kind: EventDuration, Duration: 60 * time.Second})

	c.SeekAbsolute(90 * time.Second)
	if got := f.lastSeek(t); got != 60*time.Second {
		t.Errorf("Expected seek clamped to duration, got %v", got)
	}

	c.SeekAbsolute(-3 * time.Second)
	if got := f.lastSeek(t); got != 0 {
		t.Errorf("Expected seek clamped to 0, got %v", got)
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	c.SetVolume(150)
	if c.Volume() != 100 {
		t.Errorf("SetVolume(150) -> %d, expected 100", c.Volume())
	}

	c.SetVolume(-5)
	if c.Volume() != 0 {
		t.Errorf("SetVolume(-5) -> %d, expected 0", c.Volume())
	}
}

func TestEnded_ForcesPaused(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	c.TogglePlayPause()
	inject(t, c, f, Event{Kind: EventDuration, Duration: 30 * time.Second})
	inject(t, c, f, Event{Kind: EventEnded})

	st := c.Snapshot()
	if st.Playing {
		t.Error("Ended event must force playing=false")
	}
	if st.Position != 30*time.Second {
		t.Errorf("Ended event should pin position to duration, got %v", st.Position)
	}
}

func TestRebind_DropsStaleEvents(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	inject(t, c, f, Event{Kind: EventProgress, Position: 20 * time.Second, Duration: 60 * time.Second})

	second := &models.Podcast{ID: 2, Title: "Second", AudioURL: "https://example.com/b.mp3"}
	if err := c.Bind(second); err != nil {
		t.Fatalf("Rebind failed: %v", err)
	}
	defer c.Close()

	st := c.Snapshot()
	if st.Position != 0 || st.Duration != 0 || st.Playing {
		t.Errorf("Rebind must reset state, got %+v", st)
	}
	if c.Record().ID != 2 {
		t.Errorf("Expected record 2 bound, got %d", c.Record().ID)
	}
}

func TestClose_PausesAndDiscardsState(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	c.TogglePlayPause()
	c.Close()

	if f.isPlaying() {
		t.Error("Close must implicitly pause the resource")
	}
	if c.Record() != nil {
		t.Error("Close must unbind the record")
	}
	if st := c.Snapshot(); st.Playing || st.Position != 0 {
		t.Errorf("Close must discard transport state, got %+v", st)
	}
}

func TestVolume_SurvivesRebind(t *testing.T) {
	f := newFakeResource()
	c := NewController(f, 80)

	c.SetVolume(35)
	if err := c.Bind(testRecord()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	defer c.Close()

	f.mu.Lock()
	applied := len(f.volumes) > 0 && f.volumes[len(f.volumes)-1] == 35
	f.mu.Unlock()
	if !applied {
		t.Errorf("Expected volume 35 re-applied on bind, got %v", f.volumes)
	}
}

package player

import (
	"log"
	"sync"
	"time"

	"github.com/casttivi/casttivi/internal/models"
)

// State is a snapshot of the transport state bound to the current record.
type State struct {
	Playing  bool
	Position time.Duration
	Duration time.Duration
	Volume   int
}

// Controller owns the transport state for the record currently open in the
// player overlay. It translates user commands into resource operations and
// mirrors resource events back into state. With no record bound (or a
// record without an audio source) every transport command is a no-op.
type Controller struct {
	mu       sync.Mutex
	res      Resource
	record   *models.Podcast
	bound    bool
	playing  bool
	position time.Duration
	duration time.Duration
	volume   int

	// stop tears down the event consumer registered for the bound record,
	// so a stale tick cannot mutate the state of a later binding.
	stop     chan struct{}
	onUpdate func()
}

// NewController wraps a playback resource. Volume starts at the given
// percentage and survives rebinding.
func NewController(res Resource, volume int) *Controller {
	return &Controller{
		res:    res,
		volume: clampVolume(volume),
	}
}

// SetOnUpdate registers a callback invoked after every resource-driven
// state change. The UI uses it to poke a redraw.
func (c *Controller) SetOnUpdate(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = fn
}

// Bind selects a new record: the resource is pointed at its audio source
// and the transport state resets to position zero, not playing, duration
// unknown. Records without an audio source bind with no resource attached.
func (c *Controller) Bind(rec *models.Podcast) error {
	c.mu.Lock()
	c.teardown()
	c.record = rec
	c.playing = false
	c.position = 0
	c.duration = 0
	c.bound = false
	c.mu.Unlock()

	if rec == nil || rec.AudioURL == "" {
		return nil
	}

	if err := c.res.Load(rec.AudioURL); err != nil {
		return err
	}
	if err := c.res.SetVolume(c.Volume()); err != nil {
		log.Printf("Failed to apply volume on bind: %v", err)
	}

	c.mu.Lock()
	c.bound = true
	c.stop = make(chan struct{})
	go c.consumeEvents(c.stop)
	c.mu.Unlock()

	return nil
}

// Close discards the bound state. The resource is implicitly paused; no
// further events are applied.
func (c *Controller) Close() {
	c.mu.Lock()
	wasBound := c.bound
	c.teardown()
	c.record = nil
	c.bound = false
	c.playing = false
	c.position = 0
	c.duration = 0
	c.mu.Unlock()

	if wasBound {
		if err := c.res.Pause(); err != nil {
			log.Printf("Failed to pause on close: %v", err)
		}
	}
}

// TogglePlayPause flips between playing and paused. This is the only place
// the playing flag changes outside of resource events.
func (c *Controller) TogglePlayPause() {
	c.mu.Lock()
	if !c.bound {
		c.mu.Unlock()
		return
	}
	starting := !c.playing
	c.playing = starting
	c.mu.Unlock()

	var err error
	if starting {
		err = c.res.Play()
	} else {
		err = c.res.Pause()
	}
	if err != nil {
		log.Printf("Transport toggle failed: %v", err)
	}
}

// SeekRelative jumps by delta, clamped to [0, duration]. Used for the
// skip-back/skip-forward controls.
func (c *Controller) SeekRelative(delta time.Duration) {
	c.mu.Lock()
	if !c.bound {
		c.mu.Unlock()
		return
	}
	target := clampPosition(c.position+delta, c.duration)
	c.position = target
	c.mu.Unlock()

	if err := c.res.SeekTo(target); err != nil {
		log.Printf("Relative seek failed: %v", err)
	}
}

// SeekAbsolute jumps to a position, clamped to [0, duration]. Used by the
// scrub control.
func (c *Controller) SeekAbsolute(position time.Duration) {
	c.mu.Lock()
	if !c.bound {
		c.mu.Unlock()
		return
	}
	target := clampPosition(position, c.duration)
	c.position = target
	c.mu.Unlock()

	if err := c.res.SeekTo(target); err != nil {
		log.Printf("Absolute seek failed: %v", err)
	}
}

// SetVolume clamps to [0,100] and forwards to the resource. The value is
// retained even with nothing bound and re-applied on the next bind.
func (c *Controller) SetVolume(percent int) {
	c.mu.Lock()
	c.volume = clampVolume(percent)
	bound := c.bound
	vol := c.volume
	c.mu.Unlock()

	if !bound {
		return
	}
	if err := c.res.SetVolume(vol); err != nil {
		log.Printf("Volume change failed: %v", err)
	}
}

// AdjustVolume nudges the volume by delta percentage points.
func (c *Controller) AdjustVolume(delta int) {
	c.SetVolume(c.Volume() + delta)
}

func (c *Controller) Volume() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// Record returns the currently bound record, or nil.
func (c *Controller) Record() *models.Podcast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// Snapshot returns the transport state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Playing:  c.playing,
		Position: c.position,
		Duration: c.duration,
		Volume:   c.volume,
	}
}

// consumeEvents applies resource events in arrival order until the binding
// changes.
func (c *Controller) consumeEvents(stop chan struct{}) {
	events := c.res.Events()
	for {
		select {
		case <-stop:
			return
		case ev := <-events:
			c.apply(ev)
		}
	}
}

func (c *Controller) apply(ev Event) {
	c.mu.Lock()
	if !c.bound {
		c.mu.Unlock()
		return
	}

	switch ev.Kind {
	case EventProgress:
		c.position = ev.Position
		if ev.Duration > 0 {
			c.duration = ev.Duration
		}
		if c.duration > 0 && c.position > c.duration {
			c.position = c.duration
		}
	case EventDuration:
		c.duration = ev.Duration
	case EventEnded:
		c.playing = false
		if c.duration > 0 {
			c.position = c.duration
		}
	}
	fn := c.onUpdate
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// teardown stops the event consumer for the current binding. Callers hold
// the mutex.
func (c *Controller) teardown() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func clampPosition(p, max time.Duration) time.Duration {
	if p < 0 {
		return 0
	}
	if max > 0 && p > max {
		return max
	}
	// Duration unknown yet: only the lower bound applies.
	if max == 0 {
		return 0
	}
	return p
}

func clampVolume(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

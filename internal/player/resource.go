// Package player adapts an external audio engine to the transport state
// the UI renders. The engine is treated as an opaque resource: commands go
// in, progress/duration/ended events come out.
package player

import "time"

// EventKind identifies what a resource event carries.
type EventKind int

const (
	// EventProgress is the periodic position tick while a track is loaded.
	EventProgress EventKind = iota
	// EventDuration fires when the resource learns the track's duration.
	EventDuration
	// EventEnded fires at most once per playthrough.
	EventEnded
)

type Event struct {
	Kind     EventKind
	Position time.Duration
	Duration time.Duration
}

// Resource is the playback engine abstraction. The real implementation
// drives mpv over its IPC socket; tests use an in-memory fake. Loading a
// new source resets the resource; events emitted afterwards refer to the
// new source only.
type Resource interface {
	// Load binds the resource to a new source, paused at position zero.
	Load(source string) error
	Play() error
	Pause() error
	// SeekTo jumps to an absolute position. Callers clamp; the resource
	// only has to tolerate in-range values.
	SeekTo(position time.Duration) error
	// SetVolume takes a percentage in [0,100].
	SetVolume(percent int) error
	// Stop unloads the current source.
	Stop() error
	// Events returns the resource's event stream. The channel is owned by
	// the resource and stays open for its lifetime.
	Events() <-chan Event
}

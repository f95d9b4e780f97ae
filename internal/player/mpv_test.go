package player

import (
	"testing"
	"time"
)

func TestEmitDropsProgressWhenFull(t *testing.T) {
	m := NewMPV()

	for i := 0; i < cap(m.events)+3; i++ {
		m.emit(Event{Kind: EventProgress, Position: time.Duration(i) * time.Second})
	}

	if len(m.events) != cap(m.events) {
		t.Fatalf("Buffered events = %d, expected %d", len(m.events), cap(m.events))
	}

	// The overflow ticks were dropped, not queued behind the buffer
	first := <-m.events
	if first.Position != 0 {
		t.Errorf("First buffered event position = %v, expected 0s", first.Position)
	}
}

func TestEmitEndedSurvivesFullBuffer(t *testing.T) {
	m := NewMPV()

	for i := 0; i < cap(m.events); i++ {
		m.emit(Event{Kind: EventProgress, Position: time.Duration(i) * time.Second})
	}

	m.emit(Event{Kind: EventEnded})

	found := false
	for len(m.events) > 0 {
		if ev := <-m.events; ev.Kind == EventEnded {
			found = true
		}
	}
	if !found {
		t.Error("Ended event was dropped by a full buffer")
	}
}

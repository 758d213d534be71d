package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEventsStopsWhenDone(t *testing.T) {
	out := make(chan tcell.Event, 1)
	out <- tcell.NewEventInterrupt(nil)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		pumpEvents(func() tcell.Event { return tcell.NewEventInterrupt(nil) }, out, done)
		close(stopped)
	}()

	close(done)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump blocked on a full channel after done closed")
	}
}

func TestPumpEventsStopsOnScreenClose(t *testing.T) {
	out := make(chan tcell.Event, 4)
	events := []tcell.Event{tcell.NewEventInterrupt(1), tcell.NewEventInterrupt(2)}
	poll := func() tcell.Event {
		if len(events) == 0 {
			return nil
		}
		ev := events[0]
		events = events[1:]
		return ev
	}

	pumpEvents(poll, out, make(chan struct{}))
	if len(out) != 2 {
		t.Fatalf("expected 2 forwarded events, got %d", len(out))
	}
}

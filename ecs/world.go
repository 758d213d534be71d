package ecs

import (
	"github.com/milk9111/encounter/ecs/component"
)

// World owns entities, components, the frame clock and system order. It is
// the global actor list: creating an entity registers an actor, destroying
// it is the only way an actor stops receiving updates.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler *Scheduler
	events    EventQueue

	now   float64
	delta float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		scheduler: NewScheduler(),
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update advances the clock by deltaMs and runs every system once. The first
// system error aborts the frame and is returned.
func (w *World) Update(deltaMs float64) error {
	if w == nil {
		return nil
	}
	w.events.flush()
	w.delta = deltaMs
	w.now += deltaMs
	return w.scheduler.Update(w)
}

// Now returns the world clock in milliseconds.
func (w *World) Now() float64 {
	if w == nil {
		return 0
	}
	return w.now
}

// Delta returns the length of the current frame in milliseconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Events returns the world event queue. Events pushed during a frame stay
// readable until the next Update.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventSaucerSpawned   = "saucer_spawned"
	EventSaucerState     = "saucer_state"
	EventSaucerDestroyed = "saucer_destroyed"
	EventShotFired       = "shot_fired"
	EventObeliskBump     = "obelisk_bump"
	EventCombatStarted   = "combat_started"
)

// ActorEvent is the payload of every actor-scoped event.
type ActorEvent struct {
	Entity Entity
	Type   string
	Detail string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

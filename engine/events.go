package engine

import "github.com/lixenwraith/escape-artist/parameter"

// EventType represents the type of session event
type EventType int

const (
	// EventBossDefeated ends the session in victory
	// Trigger: Boss health reaches zero | Payload: nil
	EventBossDefeated EventType = iota

	// EventCheckpoint records that the death point moved
	// Trigger: DialogTrigger touched | Payload: RoomCoord
	EventCheckpoint

	// EventEnemyKilled signals an enemy entered its death flicker
	// Trigger: Enemy health reaches zero | Payload: nil
	EventEnemyKilled
)

// Event is a single queued notification
type Event struct {
	Type    EventType
	Payload any
}

// EventQueue is a FIFO buffer drained once per tick by the session
// Single-threaded; the registry owner is the only producer and consumer
type EventQueue struct {
	events []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(ev Event) {
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []Event {
	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]Event, 0, parameter.EventQueueSize)
	return result
}

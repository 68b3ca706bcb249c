package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventWindowResized     = "window_resized"
	EventCameraModeChanged = "camera_mode_changed"
)

// WindowResized carries the new physical window size.
type WindowResized struct {
	Width  int
	Height int
}

// CameraModeChanged is pushed whenever a rig changes mode.
type CameraModeChanged struct {
	Camera Entity
	Mode   string
}

// EventQueue is a simple FIFO queue shared by all event types.
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

// Drain removes and returns the events of one type in arrival order. Events of
// other types stay queued.
func (q *EventQueue) Drain(typ string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Event{}
	}
	q.items = kept
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

package scrollview

import "github.com/eapache/queue"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// PointerEvent carries a viewport-local pointer position (pixels, Y grows
// downward) and the button involved.
type PointerEvent struct {
	Position Vec2
	Button   MouseButton
}

// WheelEvent carries a wheel delta. Positive Y is wheel-up, which scrolls
// toward earlier items. Continuous marks trackpad-style gestures that should
// feed the velocity estimate like a drag does.
type WheelEvent struct {
	Delta      Vec2
	Continuous bool
}

// InputHandler consumes host input. Scroller and View both implement it.
type InputHandler interface {
	PointerDown(ev PointerEvent)
	PointerUp(ev PointerEvent)
	BeginDrag(ev PointerEvent)
	Drag(ev PointerEvent)
	EndDrag(ev PointerEvent)
	Wheel(ev WheelEvent)
}

// EventKind identifies a queued input event.
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerUp
	EventBeginDrag
	EventDrag
	EventEndDrag
	EventWheel
)

// Event is one queued host input event.
type Event struct {
	Kind    EventKind
	Pointer PointerEvent
	Wheel   WheelEvent
}

// EventQueue buffers host input between frames. Host callbacks push, and the
// frame loop calls Dispatch before ticking so input is always applied before
// the simulator advances. It is not safe for concurrent use; fill and drain it
// on the thread that runs the frame loop.
type EventQueue struct {
	q *queue.Queue
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{q: queue.New()}
}

// Push appends an event.
func (eq *EventQueue) Push(ev Event) {
	eq.q.Add(ev)
}

// PushPointer appends a pointer event of the given kind.
func (eq *EventQueue) PushPointer(kind EventKind, pos Vec2, button MouseButton) {
	eq.Push(Event{Kind: kind, Pointer: PointerEvent{Position: pos, Button: button}})
}

// PushWheel appends a wheel event.
func (eq *EventQueue) PushWheel(delta Vec2, continuous bool) {
	eq.Push(Event{Kind: EventWheel, Wheel: WheelEvent{Delta: delta, Continuous: continuous}})
}

// Len returns the number of pending events.
func (eq *EventQueue) Len() int {
	return eq.q.Length()
}

// Clear drops all pending events.
func (eq *EventQueue) Clear() {
	eq.q = queue.New()
}

// Dispatch delivers every pending event to h in arrival order and returns
// how many were delivered.
func (eq *EventQueue) Dispatch(h InputHandler) int {
	n := 0
	for eq.q.Length() > 0 {
		ev := eq.q.Remove().(Event)
		deliver(h, ev)
		n++
	}
	return n
}

func deliver(h InputHandler, ev Event) {
	switch ev.Kind {
	case EventPointerDown:
		h.PointerDown(ev.Pointer)
	case EventPointerUp:
		h.PointerUp(ev.Pointer)
	case EventBeginDrag:
		h.BeginDrag(ev.Pointer)
	case EventDrag:
		h.Drag(ev.Pointer)
	case EventEndDrag:
		h.EndDrag(ev.Pointer)
	case EventWheel:
		h.Wheel(ev.Wheel)
	}
}

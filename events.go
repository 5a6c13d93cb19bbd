package arbor

// Event is an optional per-frame payload that at most one consumer may take.
// Once taken the event is claimed and stays empty for the rest of the frame.
type Event[T any] struct {
	value   T
	ok      bool
	claimed bool
}

// Some returns an event carrying v.
func Some[T any](v T) Event[T] {
	return Event[T]{value: v, ok: true}
}

// None returns an empty event.
func None[T any]() Event[T] {
	return Event[T]{}
}

// Peek returns the payload without consuming it.
func (e *Event[T]) Peek() (T, bool) {
	return e.value, e.ok
}

// IsSome reports whether the payload is still present.
func (e *Event[T]) IsSome() bool { return e.ok }

// IsNone reports whether the payload is absent or already taken.
func (e *Event[T]) IsNone() bool { return !e.ok }

// Claimed reports whether a consumer removed the payload this frame.
func (e *Event[T]) Claimed() bool { return e.claimed }

// Take removes and returns the payload.
func (e *Event[T]) Take() (T, bool) {
	v, ok := e.value, e.ok
	if ok {
		var zero T
		e.value = zero
		e.ok = false
		e.claimed = true
	}
	return v, ok
}

// TakeIf removes and returns the payload only if pred accepts it.
func (e *Event[T]) TakeIf(pred func(T) bool) (T, bool) {
	if e.ok && pred(e.value) {
		return e.Take()
	}
	var zero T
	return zero, false
}

// TakeWithDibs removes the payload on behalf of a node that holds exclusive
// rights to it this frame. Panics if another consumer already claimed it:
// two nodes both believing they own the same event is a programming error.
// An event that never carried a payload returns false.
func (e *Event[T]) TakeWithDibs() (T, bool) {
	if e.claimed {
		panic("arbor: event already claimed this frame")
	}
	return e.Take()
}

// MouseEvent is the pointer state for one frame.
type MouseEvent struct {
	Position Point
	Press    Event[struct{}] // primary button went down this frame
	Scroll   Event[Point]    // wheel delta, present when non-zero
}

// Events is the input snapshot handed to the tick passes each frame.
type Events struct {
	Mouse Event[MouseEvent]

	// PrimaryReleased is deliberately not claimable: every element that
	// reacted to a press must be able to reset, whoever claimed the press.
	PrimaryReleased bool
}

// MousePosition returns the pointer position if the mouse event is unclaimed.
func (ev *Events) MousePosition() (Point, bool) {
	m, ok := ev.Mouse.Peek()
	return m.Position, ok
}

// MouseOver reports whether the unclaimed mouse event lies inside r.
func (ev *Events) MouseOver(r Rect) bool {
	m, ok := ev.Mouse.Peek()
	return ok && r.Contains(m.Position)
}

// TakeMouseOver claims the mouse event if it lies inside r.
func (ev *Events) TakeMouseOver(r Rect) (MouseEvent, bool) {
	return ev.Mouse.TakeIf(func(m MouseEvent) bool {
		return r.Contains(m.Position)
	})
}

// remapMouse replaces the pointer position with (raw + pan) * zoom and
// returns a function restoring the original coordinates. A payload claimed
// in between keeps the remapped position it was taken with.
func (ev *Events) remapMouse(pan Point, zoom float64) (restore func()) {
	if !ev.Mouse.ok {
		return func() {}
	}
	original := ev.Mouse.value.Position
	ev.Mouse.value.Position = original.Add(pan).Scale(zoom)
	return func() {
		if ev.Mouse.ok {
			ev.Mouse.value.Position = original
		}
	}
}

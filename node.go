package arbor

import "fmt"

// TickContext is handed through the tick passes untouched. Backends put
// whatever services their widgets need behind it (frame delta, key state,
// render targets); the engine never looks inside.
type TickContext interface{}

// DrawContext is the backend surface nodes paint into.
type DrawContext interface {
	DrawRect(r Rect, c Color)
	DrawText(text string, topLeft Point, fontSize float64, c Color)
}

// ViewContext is an optional DrawContext extension. Viewport uses it to
// paint its content clipped to its bounds and under the same pan and zoom
// it applies to pointer input. Calls nest; every PushView is matched by a
// PopView.
type ViewContext interface {
	DrawContext
	PushView(clip Rect, pan Point, zoom float64)
	PopView()
}

// TextMeasurer measures rendered text. Provided by the backend; the engine
// does no shaping of its own.
type TextMeasurer interface {
	MeasureText(text string, fontSize float64) (width, height float64)
}

// Node is the contract every element of the tree implements.
//
// The three tick methods form the per-frame event protocol:
//
//   - DibsTick runs first over the whole tree and lets nodes holding a
//     state-based right to an event (a drag in progress) claim it with
//     Event.TakeWithDibs before any hit testing happens.
//   - ActiveTick runs on the subtree under the pointer. Nodes with children
//     tick the children first, back to front, so the frontmost overlapping
//     element gets the first chance to claim the mouse event.
//   - InactiveTick runs on every other subtree. It receives the snapshot by
//     value and cannot consume anything.
//
// Draw visits children in composition order, so later children paint on
// top of earlier ones and tick order matches what the user sees.
type Node interface {
	// SizeRange returns the width and height ranges the node accepts.
	SizeRange() (w, h SizeRange)
	// Bounds returns the rectangle the node occupies inside slot.
	Bounds(slot Rect) Rect
	DibsTick(tc TickContext, slot Rect, ev *Events)
	ActiveTick(tc TickContext, slot Rect, ev *Events)
	InactiveTick(tc TickContext, slot Rect, ev Events)
	Draw(dc DrawContext, slot Rect)
}

// Leaf supplies no-op ticks and drawing. Embed it in leaf nodes and override
// what they need. It does not supply SizeRange or Bounds: those depend on
// the embedding type.
type Leaf struct{}

func (Leaf) DibsTick(TickContext, Rect, *Events)    {}
func (Leaf) InactiveTick(TickContext, Rect, Events) {}
func (Leaf) Draw(DrawContext, Rect)                 {}

// ActiveTick does nothing. A leaf that overrides InactiveTick and wants the
// same behaviour while hovered overrides ActiveTick with LeafActive.
func (Leaf) ActiveTick(TickContext, Rect, *Events) {}

// LeafActive runs n's InactiveTick on a copy of ev. It is the default
// ActiveTick for nodes that never consume input:
//
//	func (c *Clock) ActiveTick(tc arbor.TickContext, slot arbor.Rect, ev *arbor.Events) {
//		arbor.LeafActive(c, tc, slot, ev)
//	}
func LeafActive(n Node, tc TickContext, slot Rect, ev *Events) {
	n.InactiveTick(tc, slot, *ev)
}

// Sizer is the part of Node that DefaultBounds needs.
type Sizer interface {
	SizeRange() (w, h SizeRange)
}

// DefaultBounds shrinks slot to the node's maximum size, anchored at the
// slot's top-left corner. In debug mode it panics when slot is smaller than
// the node's minimum: a parent must never offer less than that.
func DefaultBounds(n Sizer, slot Rect) Rect {
	w, h := n.SizeRange()
	width, height := slot.Width(), slot.Height()
	if globalDebug {
		checkSlot(n, slot, w, h)
	}
	return Rect{
		XMin: slot.XMin,
		YMin: slot.YMin,
		XMax: slot.XMin + min(width, w.Max),
		YMax: slot.YMin + min(height, h.Max),
	}
}

// checkSlot panics when slot is smaller than the minimum of w and h.
func checkSlot(n any, slot Rect, w, h SizeRange) {
	// Allow for float error accumulated by parents summing child sizes.
	const eps = 1e-9
	if slot.Width()+eps < w.Min || slot.Height()+eps < h.Min {
		panic(fmt.Sprintf("arbor: slot %vx%v smaller than minimum %vx%v of %T",
			slot.Width(), slot.Height(), w.Min, h.Min, n))
	}
}

// Empty is a node with no size opinion that does nothing.
type Empty struct {
	Leaf
}

func (Empty) SizeRange() (w, h SizeRange) { return AnySize, AnySize }

func (e Empty) Bounds(slot Rect) Rect { return DefaultBounds(e, slot) }

// Fill paints its whole slot in one color.
type Fill struct {
	Leaf
	Color Color
}

// NewFill creates a Fill node.
func NewFill(c Color) *Fill {
	return &Fill{Color: c}
}

func (f *Fill) SizeRange() (w, h SizeRange) { return AnySize, AnySize }

func (f *Fill) Bounds(slot Rect) Rect { return DefaultBounds(f, slot) }

func (f *Fill) Draw(dc DrawContext, slot Rect) {
	dc.DrawRect(f.Bounds(slot), f.Color)
}

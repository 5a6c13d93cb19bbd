package arbor

import "iter"

// Region pins its child to a fixed absolute rectangle, ignoring the slot it
// is offered. Use it for floating panels and anything positioned by hand.
type Region struct {
	Rect    Rect
	content Element
}

// NewRegion creates a Region covering r.
func NewRegion(r Rect, content Node) *Region {
	return &Region{Rect: r, content: Wrap(content)}
}

func (r *Region) Content() *Element { return &r.content }

func (r *Region) SizeRange() (w, h SizeRange) {
	return Exact(r.Rect.Width()), Exact(r.Rect.Height())
}

// Bounds returns the stored rectangle whatever slot is.
func (r *Region) Bounds(Rect) Rect { return r.Rect }

func (r *Region) Children(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(r, slot)
}

func (r *Region) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(r, slot)
}

func (r *Region) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(r, tc, slot, ev)
}

func (r *Region) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	ActiveTickChildren(r, tc, slot, ev)
}

func (r *Region) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(r, tc, slot, ev)
}

func (r *Region) Draw(dc DrawContext, slot Rect) {
	DrawChildren(r, dc, slot)
}

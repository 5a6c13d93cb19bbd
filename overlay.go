package arbor

import "iter"

// OverlayBox stacks its children on top of each other in the same space.
// The last child is drawn on top and gets the pointer first.
type OverlayBox struct {
	ChildList
}

// NewOverlayBox creates an OverlayBox holding layers, bottom first.
func NewOverlayBox(layers ...Node) *OverlayBox {
	b := &OverlayBox{}
	b.items = WrapAll(layers...)
	return b
}

// SizeRange takes the largest minimum and the largest maximum of the
// children on each axis.
func (b *OverlayBox) SizeRange() (w, h SizeRange) {
	for i := range b.items {
		cw, ch := b.items[i].SizeRange()
		w.Min = max(w.Min, cw.Min)
		w.Max = max(w.Max, cw.Max)
		h.Min = max(h.Min, ch.Min)
		h.Max = max(h.Max, ch.Max)
	}
	return w, h
}

func (b *OverlayBox) Bounds(slot Rect) Rect { return DefaultBounds(b, slot) }

func (b *OverlayBox) Children(slot Rect) iter.Seq2[*Element, Rect] {
	r := b.Bounds(slot)
	return sliceChildren(b.items, func(int) Rect { return r })
}

func (b *OverlayBox) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	r := b.Bounds(slot)
	return sliceChildrenBackward(b.items, func(int) Rect { return r })
}

func (b *OverlayBox) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(b, tc, slot, ev)
}

func (b *OverlayBox) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	ActiveTickChildren(b, tc, slot, ev)
}

func (b *OverlayBox) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(b, tc, slot, ev)
}

func (b *OverlayBox) Draw(dc DrawContext, slot Rect) {
	DrawChildren(b, dc, slot)
}

package arbor

import "iter"

// AreaLayout bounds the size of an AreaBox's child.
type AreaLayout struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// AreaBox clamps its child's size range into Layout.
type AreaBox struct {
	Layout  AreaLayout
	content Element
}

// NewAreaBox creates an AreaBox. Pass Unbounded for a maximum without limit.
func NewAreaBox(layout AreaLayout, content Node) *AreaBox {
	return &AreaBox{Layout: layout, content: Wrap(content)}
}

func (b *AreaBox) Content() *Element { return &b.content }

func (b *AreaBox) SizeRange() (w, h SizeRange) {
	cw, ch := b.content.SizeRange()
	wr := SizeRange{b.Layout.MinWidth, b.Layout.MaxWidth}
	hr := SizeRange{b.Layout.MinHeight, b.Layout.MaxHeight}
	w = SizeRange{wr.Clamp(cw.Min), wr.Clamp(cw.Max)}
	h = SizeRange{hr.Clamp(ch.Min), hr.Clamp(ch.Max)}
	return w, h
}

func (b *AreaBox) Bounds(slot Rect) Rect { return DefaultBounds(b, slot) }

func (b *AreaBox) Children(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *AreaBox) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *AreaBox) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(b, tc, slot, ev)
}

func (b *AreaBox) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	ActiveTickChildren(b, tc, slot, ev)
}

func (b *AreaBox) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(b, tc, slot, ev)
}

func (b *AreaBox) Draw(dc DrawContext, slot Rect) {
	DrawChildren(b, dc, slot)
}

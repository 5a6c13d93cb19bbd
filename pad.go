package arbor

import "iter"

// PadLayout is the inset applied on each side of a PadBox.
type PadLayout struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns Left+Right.
func (p PadLayout) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top+Bottom.
func (p PadLayout) Vertical() float64 { return p.Top + p.Bottom }

// PadBox surrounds its child with fixed insets.
type PadBox struct {
	Layout  PadLayout
	content Element
}

// NewPadBox creates a PadBox with an explicit layout.
func NewPadBox(layout PadLayout, content Node) *PadBox {
	return &PadBox{Layout: layout, content: Wrap(content)}
}

// Pad insets content by the same amount on all sides.
func Pad(all float64, content Node) *PadBox {
	return NewPadBox(PadLayout{all, all, all, all}, content)
}

// PadVH insets content by v at top and bottom and h at left and right.
func PadVH(v, h float64, content Node) *PadBox {
	return NewPadBox(PadLayout{Left: h, Top: v, Right: h, Bottom: v}, content)
}

// PadTHB insets content by top, h on both sides and bottom.
func PadTHB(top, h, bottom float64, content Node) *PadBox {
	return NewPadBox(PadLayout{Left: h, Top: top, Right: h, Bottom: bottom}, content)
}

// PadTRBL insets content clockwise from the top.
func PadTRBL(top, right, bottom, left float64, content Node) *PadBox {
	return NewPadBox(PadLayout{Left: left, Top: top, Right: right, Bottom: bottom}, content)
}

func (b *PadBox) Content() *Element { return &b.content }

func (b *PadBox) SizeRange() (w, h SizeRange) {
	w, h = b.content.SizeRange()
	pw, ph := b.Layout.Horizontal(), b.Layout.Vertical()
	w.Min += pw
	w.Max += pw
	h.Min += ph
	h.Max += ph
	return w, h
}

// Bounds returns slot shrunk by the insets; this is the rectangle the child
// is laid out in.
func (b *PadBox) Bounds(slot Rect) Rect {
	if globalDebug {
		w, h := b.SizeRange()
		checkSlot(b, slot, w, h)
	}
	return slot.Inset(b.Layout.Left, b.Layout.Top, b.Layout.Right, b.Layout.Bottom)
}

func (b *PadBox) Children(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *PadBox) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *PadBox) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(b, tc, slot, ev)
}

func (b *PadBox) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	ActiveTickChildren(b, tc, slot, ev)
}

func (b *PadBox) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(b, tc, slot, ev)
}

func (b *PadBox) Draw(dc DrawContext, slot Rect) {
	DrawChildren(b, dc, slot)
}

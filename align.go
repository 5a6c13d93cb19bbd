package arbor

import "iter"

// Align positions a child along one axis of its slot.
type Align uint8

const (
	AlignStart   Align = iota // flush with the slot's min edge
	AlignCenter               // centered
	AlignEnd                  // flush with the slot's max edge
	AlignStretch              // fill the slot, ignoring the child's maximum
)

// factor is the fraction of leftover space placed before the child.
func (a Align) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1
	default:
		return 0
	}
}

// place returns the [lo, hi) interval a child of range r takes in [min, max).
func (a Align) place(lo, hi float64, r SizeRange) (float64, float64) {
	if a == AlignStretch {
		return lo, hi
	}
	slot := hi - lo
	size := min(slot, r.Max)
	off := a.factor() * (slot - size)
	return lo + off, lo + off + size
}

// AlignLayout is the per-axis alignment of an AlignBox.
type AlignLayout struct {
	Horizontal Align
	Vertical   Align
}

// AlignBox places its child inside the slot according to Layout.
type AlignBox struct {
	Layout  AlignLayout
	content Element
}

// NewAlignBox creates an AlignBox around content.
func NewAlignBox(horizontal, vertical Align, content Node) *AlignBox {
	return &AlignBox{
		Layout:  AlignLayout{Horizontal: horizontal, Vertical: vertical},
		content: Wrap(content),
	}
}

// Center centers content on both axes.
func Center(content Node) *AlignBox {
	return NewAlignBox(AlignCenter, AlignCenter, content)
}

func (b *AlignBox) Content() *Element { return &b.content }

// SizeRange passes the child's minimum through. The child's maximum is
// forwarded only on axes that do not stretch.
func (b *AlignBox) SizeRange() (w, h SizeRange) {
	w, h = b.content.SizeRange()
	if b.Layout.Horizontal == AlignStretch {
		w.Max = Unbounded
	}
	if b.Layout.Vertical == AlignStretch {
		h.Max = Unbounded
	}
	return w, h
}

// Bounds returns the aligned child rectangle.
func (b *AlignBox) Bounds(slot Rect) Rect {
	w, h := b.content.SizeRange()
	if globalDebug {
		checkSlot(b, slot, w, h)
	}
	var r Rect
	r.XMin, r.XMax = b.Layout.Horizontal.place(slot.XMin, slot.XMax, w)
	r.YMin, r.YMax = b.Layout.Vertical.place(slot.YMin, slot.YMax, h)
	return r
}

func (b *AlignBox) Children(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *AlignBox) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *AlignBox) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(b, tc, slot, ev)
}

func (b *AlignBox) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	ActiveTickChildren(b, tc, slot, ev)
}

func (b *AlignBox) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(b, tc, slot, ev)
}

func (b *AlignBox) Draw(dc DrawContext, slot Rect) {
	DrawChildren(b, dc, slot)
}

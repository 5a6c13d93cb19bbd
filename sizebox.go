package arbor

import "iter"

// SizeLayout is the fixed size of a SizeBox.
type SizeLayout struct {
	Width, Height float64
}

// SizeBox gives its child exactly Layout's size, whatever the child asks for.
type SizeBox struct {
	Layout  SizeLayout
	content Element
}

// NewSizeBox creates a SizeBox.
func NewSizeBox(width, height float64, content Node) *SizeBox {
	return &SizeBox{Layout: SizeLayout{width, height}, content: Wrap(content)}
}

func (b *SizeBox) Content() *Element { return &b.content }

func (b *SizeBox) SizeRange() (w, h SizeRange) {
	return Exact(b.Layout.Width), Exact(b.Layout.Height)
}

// Bounds clips slot to exactly the configured size at the slot's origin.
func (b *SizeBox) Bounds(slot Rect) Rect {
	if globalDebug {
		w, h := b.SizeRange()
		checkSlot(b, slot, w, h)
	}
	return RectFromSize(slot.Min(), b.Layout.Width, b.Layout.Height)
}

func (b *SizeBox) Children(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *SizeBox) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	return ParentChildren(b, slot)
}

func (b *SizeBox) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(b, tc, slot, ev)
}

func (b *SizeBox) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	ActiveTickChildren(b, tc, slot, ev)
}

func (b *SizeBox) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(b, tc, slot, ev)
}

func (b *SizeBox) Draw(dc DrawContext, slot Rect) {
	DrawChildren(b, dc, slot)
}

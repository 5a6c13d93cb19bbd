package arbor

import "iter"

// SplitLayout configures a SplitBox.
type SplitLayout struct {
	Direction Direction
	// Split is the absolute coordinate, along Direction's main axis, where
	// the first child ends and the second begins. When laying out it is
	// clamped so both children get at least their minimum.
	Split float64
	// Resizable lets the user drag the split line.
	Resizable bool
	// HandleSize is the thickness of the draggable band centred on the
	// split line.
	HandleSize float64
}

// SplitBox shows two children sharing its space on either side of a split
// line.
type SplitBox struct {
	Layout      SplitLayout
	HandleColor Color // drawn over the split line when Resizable; zero alpha hides it

	content  [2]Element
	dragging bool
}

// NewSplitBox creates a SplitBox holding first and second.
func NewSplitBox(dir Direction, split float64, first, second Node) *SplitBox {
	return &SplitBox{
		Layout:  SplitLayout{Direction: dir, Split: split},
		content: [2]Element{Wrap(first), Wrap(second)},
	}
}

// First returns the child before the split line.
func (b *SplitBox) First() *Element { return &b.content[0] }

// Second returns the child after the split line.
func (b *SplitBox) Second() *Element { return &b.content[1] }

// Dragging reports whether the user is dragging the split line.
func (b *SplitBox) Dragging() bool { return b.dragging }

// SizeRange adds the children's extents along the main axis and takes the
// larger one across it. The maximum is bounded only if both children's are.
func (b *SplitBox) SizeRange() (w, h SizeRange) {
	w0, h0 := b.content[0].SizeRange()
	w1, h1 := b.content[1].SizeRange()
	if b.Layout.Direction == Column {
		return SizeRange{max(w0.Min, w1.Min), max(w0.Max, w1.Max)},
			SizeRange{h0.Min + h1.Min, h0.Max + h1.Max}
	}
	return SizeRange{w0.Min + w1.Min, w0.Max + w1.Max},
		SizeRange{max(h0.Min, h1.Min), max(h0.Max, h1.Max)}
}

func (b *SplitBox) Bounds(slot Rect) Rect { return DefaultBounds(b, slot) }

// splitRange returns the span the split line may take inside r so that
// both children keep at least their minimum size. ok is false when r is too
// small for both minimums.
func (b *SplitBox) splitRange(r Rect) (lo, hi float64, ok bool) {
	d := b.Layout.Direction
	w0, h0 := b.content[0].SizeRange()
	w1, h1 := b.content[1].SizeRange()
	lo = d.main(r.XMin, r.YMin) + d.main(w0.Min, h0.Min)
	hi = d.main(r.XMax, r.YMax) - d.main(w1.Min, h1.Min)
	return lo, hi, lo <= hi
}

// childRects splits the bounds at the split coordinate, clamped so neither
// child gets less than its minimum.
func (b *SplitBox) childRects(slot Rect) [2]Rect {
	r := b.Bounds(slot)
	d := b.Layout.Direction
	lo, hi := d.main(r.XMin, r.YMin), d.main(r.XMax, r.YMax)
	clo, chi := d.cross(r.XMin, r.YMin), d.cross(r.XMax, r.YMax)
	s := max(lo, min(b.Layout.Split, hi))
	if slo, shi, ok := b.splitRange(r); ok {
		s = max(slo, min(b.Layout.Split, shi))
	}
	return [2]Rect{
		d.span(lo, s, clo, chi),
		d.span(s, hi, clo, chi),
	}
}

// handle returns the draggable band around the split line.
func (b *SplitBox) handle(slot Rect) Rect {
	r := b.Bounds(slot)
	d := b.Layout.Direction
	second := b.childRects(slot)[1]
	s := d.main(second.XMin, second.YMin)
	half := b.Layout.HandleSize / 2
	return d.span(s-half, s+half, d.cross(r.XMin, r.YMin), d.cross(r.XMax, r.YMax))
}

// moveSplit puts the split line under p, keeping both children at least at
// their minimum size.
func (b *SplitBox) moveSplit(slot Rect, p Point) {
	lo, hi, ok := b.splitRange(b.Bounds(slot))
	if !ok {
		return
	}
	d := b.Layout.Direction
	b.Layout.Split = max(lo, min(d.main(p.X, p.Y), hi))
}

func (b *SplitBox) Children(slot Rect) iter.Seq2[*Element, Rect] {
	rects := b.childRects(slot)
	return sliceChildren(b.content[:], func(i int) Rect { return rects[i] })
}

func (b *SplitBox) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	rects := b.childRects(slot)
	return sliceChildrenBackward(b.content[:], func(i int) Rect { return rects[i] })
}

// DibsTick keeps the mouse event for the split line while it is being
// dragged, even once the pointer has left the box.
func (b *SplitBox) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(b, tc, slot, ev)
	if !b.dragging {
		return
	}
	if m, ok := ev.Mouse.TakeWithDibs(); ok {
		b.moveSplit(slot, m.Position)
	}
	if ev.PrimaryReleased {
		b.dragging = false
	}
}

// ActiveTick starts a drag when the primary button goes down on the handle.
// The handle sits in front of both children.
func (b *SplitBox) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	if b.Layout.Resizable && !b.dragging {
		h := b.handle(slot)
		_, ok := ev.Mouse.TakeIf(func(m MouseEvent) bool {
			return h.Contains(m.Position) && m.Press.IsSome()
		})
		b.dragging = ok
	}
	ActiveTickChildren(b, tc, slot, ev)
}

func (b *SplitBox) InactiveTick(tc TickContext, slot Rect, ev Events) {
	if b.dragging && ev.PrimaryReleased {
		b.dragging = false
	}
	InactiveTickChildren(b, tc, slot, ev)
}

func (b *SplitBox) Draw(dc DrawContext, slot Rect) {
	DrawChildren(b, dc, slot)
	if b.Layout.Resizable && b.HandleColor.A > 0 {
		dc.DrawRect(b.handle(slot), b.HandleColor)
	}
}

package arbor

import "iter"

// StackLayout configures a StackBox.
type StackLayout struct {
	Direction Direction
	Gap       float64 // space between consecutive children
}

// StackBox lays its children out one after another along Direction.
type StackBox struct {
	ChildList
	Layout StackLayout

	ext []float64 // reused extents buffer, consumed before layout returns
}

// NewStackBox creates a StackBox holding children in order.
func NewStackBox(dir Direction, gap float64, children ...Node) *StackBox {
	b := &StackBox{Layout: StackLayout{Direction: dir, Gap: gap}}
	b.items = WrapAll(children...)
	return b
}

// totalGap is the space taken by gaps: one fewer than the children.
func (b *StackBox) totalGap() float64 {
	if len(b.items) < 2 {
		return 0
	}
	return float64(len(b.items)-1) * b.Layout.Gap
}

// SizeRange sums the children's extents plus gaps along the main axis and
// takes the largest across it.
func (b *StackBox) SizeRange() (w, h SizeRange) {
	d := b.Layout.Direction
	gap := b.totalGap()
	mainR := SizeRange{gap, gap}
	var crossR SizeRange
	for i := range b.items {
		cw, ch := b.items[i].SizeRange()
		m, c := cw, ch
		if d == Column {
			m, c = ch, cw
		}
		mainR.Min += m.Min
		mainR.Max += m.Max
		crossR.Min = max(crossR.Min, c.Min)
		crossR.Max = max(crossR.Max, c.Max)
	}
	if d == Column {
		return crossR, mainR
	}
	return mainR, crossR
}

func (b *StackBox) Bounds(slot Rect) Rect { return DefaultBounds(b, slot) }

// extents decides each child's main-axis size. Every child starts at its
// minimum; space left over is shared evenly between children that can still
// grow, never past their maximum.
func (b *StackBox) extents(avail float64) []float64 {
	d := b.Layout.Direction
	n := len(b.items)
	ext := b.ext[:0]
	maxes := make([]float64, n)
	used := b.totalGap()
	for i := range b.items {
		cw, ch := b.items[i].SizeRange()
		m := cw
		if d == Column {
			m = ch
		}
		ext = append(ext, m.Min)
		maxes[i] = m.Max
		used += m.Min
	}
	b.ext = ext

	extra := avail - used
	for pass := 0; pass < n && extra > 1e-9; pass++ {
		growable := 0
		for i := range ext {
			if ext[i] < maxes[i] {
				growable++
			}
		}
		if growable == 0 {
			break
		}
		share := extra / float64(growable)
		for i := range ext {
			if ext[i] < maxes[i] {
				add := min(share, maxes[i]-ext[i])
				ext[i] += add
				extra -= add
			}
		}
	}
	return ext
}

// layout places children sequentially inside the bounds. The result is
// owned by the caller.
func (b *StackBox) layout(slot Rect) []Rect {
	r := b.Bounds(slot)
	d := b.Layout.Direction
	lo, hi := d.main(r.XMin, r.YMin), d.main(r.XMax, r.YMax)
	clo, chi := d.cross(r.XMin, r.YMin), d.cross(r.XMax, r.YMax)
	ext := b.extents(hi - lo)

	rects := make([]Rect, 0, len(ext))
	off := lo
	for i := range ext {
		rects = append(rects, d.span(off, off+ext[i], clo, chi))
		off += ext[i] + b.Layout.Gap
	}
	return rects
}

// Children lays out when ranged, so every sequence sees the slot it was
// created with.
func (b *StackBox) Children(slot Rect) iter.Seq2[*Element, Rect] {
	return func(yield func(*Element, Rect) bool) {
		rects := b.layout(slot)
		for child, r := range sliceChildren(b.items, func(i int) Rect { return rects[i] }) {
			if !yield(child, r) {
				return
			}
		}
	}
}

func (b *StackBox) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	return func(yield func(*Element, Rect) bool) {
		rects := b.layout(slot)
		for child, r := range sliceChildrenBackward(b.items, func(i int) Rect { return rects[i] }) {
			if !yield(child, r) {
				return
			}
		}
	}
}

func (b *StackBox) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(b, tc, slot, ev)
}

func (b *StackBox) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	ActiveTickChildren(b, tc, slot, ev)
}

func (b *StackBox) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(b, tc, slot, ev)
}

func (b *StackBox) Draw(dc DrawContext, slot Rect) {
	DrawChildren(b, dc, slot)
}

package arbor

import (
	"iter"
	"math"
)

// GridLayout configures a UniformGrid. Columns must be at least 1.
type GridLayout struct {
	CellWidth, CellHeight float64
	ColumnGap, RowGap     float64
	Columns               int
}

// UniformGrid lays its children out in equally sized cells, filling rows
// left to right, top to bottom.
type UniformGrid struct {
	ChildList
	Layout GridLayout
}

// NewUniformGrid creates a grid. Panics if layout.Columns < 1.
func NewUniformGrid(layout GridLayout, children ...Node) *UniformGrid {
	g := &UniformGrid{Layout: layout}
	g.columns()
	g.items = WrapAll(children...)
	return g
}

// columns returns Layout.Columns and panics if it is below 1.
func (g *UniformGrid) columns() int {
	if g.Layout.Columns < 1 {
		panic("arbor: grid needs at least one column")
	}
	return g.Layout.Columns
}

// dims returns the number of used columns and rows.
func (g *UniformGrid) dims() (cols, rows int) {
	n := len(g.items)
	if n == 0 {
		return 0, 0
	}
	c := g.columns()
	cols = min(n, c)
	rows = (n + c - 1) / c
	return cols, rows
}

// span returns the length of count cells of size cell separated by gap.
func span(count int, cell, gap float64) float64 {
	if count == 0 {
		return 0
	}
	return float64(count)*(cell+gap) - gap
}

// SizeRange is exact: the grid is as big as its cells and gaps.
func (g *UniformGrid) SizeRange() (w, h SizeRange) {
	cols, rows := g.dims()
	return Exact(span(cols, g.Layout.CellWidth, g.Layout.ColumnGap)),
		Exact(span(rows, g.Layout.CellHeight, g.Layout.RowGap))
}

func (g *UniformGrid) Bounds(slot Rect) Rect { return DefaultBounds(g, slot) }

// CellRect returns the rectangle of cell index for a grid whose top-left
// corner is origin.
func (g *UniformGrid) CellRect(origin Point, index int) Rect {
	c := g.columns()
	row, col := index/c, index%c
	x := origin.X + float64(col)*(g.Layout.CellWidth+g.Layout.ColumnGap)
	y := origin.Y + float64(row)*(g.Layout.CellHeight+g.Layout.RowGap)
	return RectFromSize(Point{x, y}, g.Layout.CellWidth, g.Layout.CellHeight)
}

// Position maps a point relative to the grid's origin to the index of the
// cell containing it. Points in a gap, outside the grid or on a cell past
// the last child report false.
func (g *UniformGrid) Position(p Point) (int, bool) {
	c := g.columns()
	if p.X < 0 || p.Y < 0 {
		return 0, false
	}
	col, ok := cellIndex(p.X, g.Layout.CellWidth, g.Layout.ColumnGap)
	if !ok || col >= c {
		return 0, false
	}
	row, ok := cellIndex(p.Y, g.Layout.CellHeight, g.Layout.RowGap)
	if !ok {
		return 0, false
	}
	index := row*c + col
	if index >= len(g.items) {
		return 0, false
	}
	return index, true
}

// cellIndex finds which cell of size cell (followed by gap) v falls in.
func cellIndex(v, cell, gap float64) (int, bool) {
	stride := cell + gap
	if stride <= 0 {
		return 0, false
	}
	i := math.Floor(v / stride)
	if i > math.MaxInt32 {
		return 0, false
	}
	if v-i*stride >= cell {
		return 0, false
	}
	return int(i), true
}

func (g *UniformGrid) Children(slot Rect) iter.Seq2[*Element, Rect] {
	origin := g.Bounds(slot).Min()
	return sliceChildren(g.items, func(i int) Rect { return g.CellRect(origin, i) })
}

func (g *UniformGrid) ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect] {
	origin := g.Bounds(slot).Min()
	return sliceChildrenBackward(g.items, func(i int) Rect { return g.CellRect(origin, i) })
}

func (g *UniformGrid) DibsTick(tc TickContext, slot Rect, ev *Events) {
	DibsTickChildren(g, tc, slot, ev)
}

// ActiveTick looks the hovered cell up directly instead of testing every
// cell. Cells never overlap, so at most one child can be under the pointer.
func (g *UniformGrid) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	origin := g.Bounds(slot).Min()
	hovered := -1
	if p, ok := ev.MousePosition(); ok {
		if i, ok := g.Position(p.Sub(origin)); ok {
			hovered = i
		}
	}
	for i := len(g.items) - 1; i >= 0; i-- {
		r := g.CellRect(origin, i)
		if i == hovered && ev.MouseOver(r) {
			g.items[i].ActiveTick(tc, r, ev)
		} else {
			g.items[i].InactiveTick(tc, r, *ev)
		}
	}
}

func (g *UniformGrid) InactiveTick(tc TickContext, slot Rect, ev Events) {
	InactiveTickChildren(g, tc, slot, ev)
}

func (g *UniformGrid) Draw(dc DrawContext, slot Rect) {
	DrawChildren(g, dc, slot)
}

package arbor

import "time"

// Tree is the root of a UI. It turns one frame of input into the dibs and
// tick passes and draws the result.
type Tree struct {
	Root Element
}

// NewTree creates a Tree around root.
func NewTree(root Node) *Tree {
	return &Tree{Root: Wrap(root)}
}

// Update polls src, runs the dibs pass over the whole tree and then ticks
// the root active if the pointer is on screen, inactive otherwise. It
// returns the snapshot as the tree left it: a claimed mouse event means
// some node consumed the pointer this frame.
func (t *Tree) Update(tc TickContext, src InputSource, screen Rect) Events {
	ev := PollEvents(src)

	var stats debugStats
	var t0 time.Time
	if globalDebug {
		visits = 0
		t0 = time.Now()
	}

	t.Root.DibsTick(tc, screen, &ev)

	if globalDebug {
		stats.dibsTime = time.Since(t0)
		stats.dibsVisits = visits
		visits = 0
		t0 = time.Now()
	}

	if ev.MouseOver(screen) {
		t.Root.ActiveTick(tc, screen, &ev)
	} else {
		t.Root.InactiveTick(tc, screen, ev)
	}

	if globalDebug {
		stats.tickTime = time.Since(t0)
		stats.tickVisits = visits
		stats.mouseTaken = ev.Mouse.Claimed()
		debugLogUpdate(stats)
	}
	return ev
}

// Draw paints the tree into dc.
func (t *Tree) Draw(dc DrawContext, screen Rect) {
	var t0 time.Time
	if globalDebug {
		visits = 0
		t0 = time.Now()
	}

	t.Root.Draw(dc, screen)

	if globalDebug {
		debugLogDraw(debugStats{drawTime: time.Since(t0), drawVisits: visits})
	}
}

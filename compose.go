package arbor

import "iter"

// Collection is a node whose tick and draw passes are fully described by
// the sequence of its children and the rectangle each one gets. The
// traversal helpers below derive those passes from the two iterators.
type Collection interface {
	Node
	// Children yields each child with its rectangle, in composition order.
	Children(slot Rect) iter.Seq2[*Element, Rect]
	// ChildrenBackward yields the same pairs, last child first.
	ChildrenBackward(slot Rect) iter.Seq2[*Element, Rect]
}

// Parent is a node wrapping exactly one child. The child's rectangle is the
// parent's bounds.
type Parent interface {
	Node
	Content() *Element
}

// ParentChild returns p's child and the rectangle it is laid out in.
func ParentChild(p Parent, slot Rect) (*Element, Rect) {
	return p.Content(), p.Bounds(slot)
}

// ParentChildren adapts a Parent into a one-element child sequence, usable
// as both Children and ChildrenBackward.
func ParentChildren(p Parent, slot Rect) iter.Seq2[*Element, Rect] {
	return func(yield func(*Element, Rect) bool) {
		child, r := ParentChild(p, slot)
		yield(child, r)
	}
}

// DibsTickChildren runs the dibs pass over c's children, frontmost first.
func DibsTickChildren(c Collection, tc TickContext, slot Rect, ev *Events) {
	for child, r := range c.ChildrenBackward(slot) {
		child.DibsTick(tc, r, ev)
	}
}

// ActiveTickChildren hit tests c's children frontmost first. A child whose
// rectangle holds the still-unclaimed pointer is ticked active, every other
// child inactive, so once a front child claims the mouse event the children
// behind it no longer see it.
func ActiveTickChildren(c Collection, tc TickContext, slot Rect, ev *Events) {
	for child, r := range c.ChildrenBackward(slot) {
		if ev.MouseOver(r) {
			child.ActiveTick(tc, r, ev)
		} else {
			child.InactiveTick(tc, r, *ev)
		}
	}
}

// InactiveTickChildren ticks all of c's children inactive, frontmost first.
func InactiveTickChildren(c Collection, tc TickContext, slot Rect, ev Events) {
	for child, r := range c.ChildrenBackward(slot) {
		child.InactiveTick(tc, r, ev)
	}
}

// DrawChildren draws c's children in composition order so that later
// children end up on top.
func DrawChildren(c Collection, dc DrawContext, slot Rect) {
	for child, r := range c.Children(slot) {
		child.Draw(dc, r)
	}
}

// sliceChildren yields &children[i] with rect(i) in index order.
func sliceChildren(children []Element, rect func(i int) Rect) iter.Seq2[*Element, Rect] {
	return func(yield func(*Element, Rect) bool) {
		for i := range children {
			if !yield(&children[i], rect(i)) {
				return
			}
		}
	}
}

// sliceChildrenBackward is sliceChildren in reverse index order.
func sliceChildrenBackward(children []Element, rect func(i int) Rect) iter.Seq2[*Element, Rect] {
	return func(yield func(*Element, Rect) bool) {
		for i := len(children) - 1; i >= 0; i-- {
			if !yield(&children[i], rect(i)) {
				return
			}
		}
	}
}

package arbor

import "fmt"

// Kind identifies which node an Element holds.
type Kind uint8

const (
	KindEmpty       Kind = iota // zero Element; no size opinion, no behavior
	KindFill                    // *Fill
	KindLabel                   // *Label
	KindButton                  // *Button
	KindAlignBox                // *AlignBox
	KindAreaBox                 // *AreaBox
	KindPadBox                  // *PadBox
	KindSizeBox                 // *SizeBox
	KindSplitBox                // *SplitBox
	KindStackBox                // *StackBox
	KindUniformGrid             // *UniformGrid
	KindOverlayBox              // *OverlayBox
	KindRegion                  // *Region
	KindViewport                // *Viewport
	KindCustom                  // any other Node
)

var kindNames = [...]string{
	KindEmpty:       "Empty",
	KindFill:        "Fill",
	KindLabel:       "Label",
	KindButton:      "Button",
	KindAlignBox:    "AlignBox",
	KindAreaBox:     "AreaBox",
	KindPadBox:      "PadBox",
	KindSizeBox:     "SizeBox",
	KindSplitBox:    "SplitBox",
	KindStackBox:    "StackBox",
	KindUniformGrid: "UniformGrid",
	KindOverlayBox:  "OverlayBox",
	KindRegion:      "Region",
	KindViewport:    "Viewport",
	KindCustom:      "Custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Element is the tagged union stored in the tree. Every combinator keeps its
// children as Elements, so a tree of mixed node kinds is homogeneous in
// storage and each tree operation is a switch on the kind rather than a
// dynamic call. Nodes defined outside this package ride along as
// KindCustom.
//
// The zero Element is an Empty node.
type Element struct {
	kind Kind

	fill     *Fill
	label    *Label
	button   *Button
	align    *AlignBox
	area     *AreaBox
	pad      *PadBox
	size     *SizeBox
	split    *SplitBox
	stack    *StackBox
	grid     *UniformGrid
	overlay  *OverlayBox
	region   *Region
	viewport *Viewport
	custom   Node
}

// Wrap stores n in an Element, tagging it with its kind. A nil n, including
// a nil pointer to one of the built-in nodes, yields the Empty element.
func Wrap(n Node) Element {
	switch n := n.(type) {
	case nil:
		return Element{}
	case Element:
		return n
	case *Element:
		if n == nil {
			return Element{}
		}
		return *n
	case Empty, *Empty:
		return Element{}
	case *Fill:
		return orEmpty(n, Element{kind: KindFill, fill: n})
	case *Label:
		return orEmpty(n, Element{kind: KindLabel, label: n})
	case *Button:
		return orEmpty(n, Element{kind: KindButton, button: n})
	case *AlignBox:
		return orEmpty(n, Element{kind: KindAlignBox, align: n})
	case *AreaBox:
		return orEmpty(n, Element{kind: KindAreaBox, area: n})
	case *PadBox:
		return orEmpty(n, Element{kind: KindPadBox, pad: n})
	case *SizeBox:
		return orEmpty(n, Element{kind: KindSizeBox, size: n})
	case *SplitBox:
		return orEmpty(n, Element{kind: KindSplitBox, split: n})
	case *StackBox:
		return orEmpty(n, Element{kind: KindStackBox, stack: n})
	case *UniformGrid:
		return orEmpty(n, Element{kind: KindUniformGrid, grid: n})
	case *OverlayBox:
		return orEmpty(n, Element{kind: KindOverlayBox, overlay: n})
	case *Region:
		return orEmpty(n, Element{kind: KindRegion, region: n})
	case *Viewport:
		return orEmpty(n, Element{kind: KindViewport, viewport: n})
	default:
		return Element{kind: KindCustom, custom: n}
	}
}

// orEmpty returns e, or the Empty element when p is nil.
func orEmpty[T any](p *T, e Element) Element {
	if p == nil {
		return Element{}
	}
	return e
}

// WrapAll wraps each node in order.
func WrapAll(nodes ...Node) []Element {
	out := make([]Element, len(nodes))
	for i, n := range nodes {
		out[i] = Wrap(n)
	}
	return out
}

// Kind returns the tag.
func (e Element) Kind() Kind { return e.kind }

// Node returns the wrapped node. The Empty element returns Empty{}.
func (e Element) Node() Node {
	switch e.kind {
	case KindFill:
		return e.fill
	case KindLabel:
		return e.label
	case KindButton:
		return e.button
	case KindAlignBox:
		return e.align
	case KindAreaBox:
		return e.area
	case KindPadBox:
		return e.pad
	case KindSizeBox:
		return e.size
	case KindSplitBox:
		return e.split
	case KindStackBox:
		return e.stack
	case KindUniformGrid:
		return e.grid
	case KindOverlayBox:
		return e.overlay
	case KindRegion:
		return e.region
	case KindViewport:
		return e.viewport
	case KindCustom:
		return e.custom
	default:
		return Empty{}
	}
}

// Typed accessors return nil when the element holds a different kind.

func (e Element) Fill() *Fill               { return e.fill }
func (e Element) Label() *Label             { return e.label }
func (e Element) Button() *Button           { return e.button }
func (e Element) AlignBox() *AlignBox       { return e.align }
func (e Element) AreaBox() *AreaBox         { return e.area }
func (e Element) PadBox() *PadBox           { return e.pad }
func (e Element) SizeBox() *SizeBox         { return e.size }
func (e Element) SplitBox() *SplitBox       { return e.split }
func (e Element) StackBox() *StackBox       { return e.stack }
func (e Element) UniformGrid() *UniformGrid { return e.grid }
func (e Element) OverlayBox() *OverlayBox   { return e.overlay }
func (e Element) Region() *Region           { return e.region }
func (e Element) Viewport() *Viewport       { return e.viewport }
func (e Element) Custom() Node              { return e.custom }

func (e Element) SizeRange() (w, h SizeRange) {
	switch e.kind {
	case KindFill:
		return e.fill.SizeRange()
	case KindLabel:
		return e.label.SizeRange()
	case KindButton:
		return e.button.SizeRange()
	case KindAlignBox:
		return e.align.SizeRange()
	case KindAreaBox:
		return e.area.SizeRange()
	case KindPadBox:
		return e.pad.SizeRange()
	case KindSizeBox:
		return e.size.SizeRange()
	case KindSplitBox:
		return e.split.SizeRange()
	case KindStackBox:
		return e.stack.SizeRange()
	case KindUniformGrid:
		return e.grid.SizeRange()
	case KindOverlayBox:
		return e.overlay.SizeRange()
	case KindRegion:
		return e.region.SizeRange()
	case KindViewport:
		return e.viewport.SizeRange()
	case KindCustom:
		return e.custom.SizeRange()
	default:
		return AnySize, AnySize
	}
}

func (e Element) Bounds(slot Rect) Rect {
	switch e.kind {
	case KindFill:
		return e.fill.Bounds(slot)
	case KindLabel:
		return e.label.Bounds(slot)
	case KindButton:
		return e.button.Bounds(slot)
	case KindAlignBox:
		return e.align.Bounds(slot)
	case KindAreaBox:
		return e.area.Bounds(slot)
	case KindPadBox:
		return e.pad.Bounds(slot)
	case KindSizeBox:
		return e.size.Bounds(slot)
	case KindSplitBox:
		return e.split.Bounds(slot)
	case KindStackBox:
		return e.stack.Bounds(slot)
	case KindUniformGrid:
		return e.grid.Bounds(slot)
	case KindOverlayBox:
		return e.overlay.Bounds(slot)
	case KindRegion:
		return e.region.Bounds(slot)
	case KindViewport:
		return e.viewport.Bounds(slot)
	case KindCustom:
		return e.custom.Bounds(slot)
	default:
		return DefaultBounds(Empty{}, slot)
	}
}

func (e Element) DibsTick(tc TickContext, slot Rect, ev *Events) {
	countVisit()
	switch e.kind {
	case KindFill:
		e.fill.DibsTick(tc, slot, ev)
	case KindLabel:
		e.label.DibsTick(tc, slot, ev)
	case KindButton:
		e.button.DibsTick(tc, slot, ev)
	case KindAlignBox:
		e.align.DibsTick(tc, slot, ev)
	case KindAreaBox:
		e.area.DibsTick(tc, slot, ev)
	case KindPadBox:
		e.pad.DibsTick(tc, slot, ev)
	case KindSizeBox:
		e.size.DibsTick(tc, slot, ev)
	case KindSplitBox:
		e.split.DibsTick(tc, slot, ev)
	case KindStackBox:
		e.stack.DibsTick(tc, slot, ev)
	case KindUniformGrid:
		e.grid.DibsTick(tc, slot, ev)
	case KindOverlayBox:
		e.overlay.DibsTick(tc, slot, ev)
	case KindRegion:
		e.region.DibsTick(tc, slot, ev)
	case KindViewport:
		e.viewport.DibsTick(tc, slot, ev)
	case KindCustom:
		e.custom.DibsTick(tc, slot, ev)
	}
}

func (e Element) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	countVisit()
	switch e.kind {
	case KindFill:
		e.fill.ActiveTick(tc, slot, ev)
	case KindLabel:
		e.label.ActiveTick(tc, slot, ev)
	case KindButton:
		e.button.ActiveTick(tc, slot, ev)
	case KindAlignBox:
		e.align.ActiveTick(tc, slot, ev)
	case KindAreaBox:
		e.area.ActiveTick(tc, slot, ev)
	case KindPadBox:
		e.pad.ActiveTick(tc, slot, ev)
	case KindSizeBox:
		e.size.ActiveTick(tc, slot, ev)
	case KindSplitBox:
		e.split.ActiveTick(tc, slot, ev)
	case KindStackBox:
		e.stack.ActiveTick(tc, slot, ev)
	case KindUniformGrid:
		e.grid.ActiveTick(tc, slot, ev)
	case KindOverlayBox:
		e.overlay.ActiveTick(tc, slot, ev)
	case KindRegion:
		e.region.ActiveTick(tc, slot, ev)
	case KindViewport:
		e.viewport.ActiveTick(tc, slot, ev)
	case KindCustom:
		e.custom.ActiveTick(tc, slot, ev)
	}
}

func (e Element) InactiveTick(tc TickContext, slot Rect, ev Events) {
	countVisit()
	switch e.kind {
	case KindFill:
		e.fill.InactiveTick(tc, slot, ev)
	case KindLabel:
		e.label.InactiveTick(tc, slot, ev)
	case KindButton:
		e.button.InactiveTick(tc, slot, ev)
	case KindAlignBox:
		e.align.InactiveTick(tc, slot, ev)
	case KindAreaBox:
		e.area.InactiveTick(tc, slot, ev)
	case KindPadBox:
		e.pad.InactiveTick(tc, slot, ev)
	case KindSizeBox:
		e.size.InactiveTick(tc, slot, ev)
	case KindSplitBox:
		e.split.InactiveTick(tc, slot, ev)
	case KindStackBox:
		e.stack.InactiveTick(tc, slot, ev)
	case KindUniformGrid:
		e.grid.InactiveTick(tc, slot, ev)
	case KindOverlayBox:
		e.overlay.InactiveTick(tc, slot, ev)
	case KindRegion:
		e.region.InactiveTick(tc, slot, ev)
	case KindViewport:
		e.viewport.InactiveTick(tc, slot, ev)
	case KindCustom:
		e.custom.InactiveTick(tc, slot, ev)
	}
}

func (e Element) Draw(dc DrawContext, slot Rect) {
	countVisit()
	switch e.kind {
	case KindFill:
		e.fill.Draw(dc, slot)
	case KindLabel:
		e.label.Draw(dc, slot)
	case KindButton:
		e.button.Draw(dc, slot)
	case KindAlignBox:
		e.align.Draw(dc, slot)
	case KindAreaBox:
		e.area.Draw(dc, slot)
	case KindPadBox:
		e.pad.Draw(dc, slot)
	case KindSizeBox:
		e.size.Draw(dc, slot)
	case KindSplitBox:
		e.split.Draw(dc, slot)
	case KindStackBox:
		e.stack.Draw(dc, slot)
	case KindUniformGrid:
		e.grid.Draw(dc, slot)
	case KindOverlayBox:
		e.overlay.Draw(dc, slot)
	case KindRegion:
		e.region.Draw(dc, slot)
	case KindViewport:
		e.viewport.Draw(dc, slot)
	case KindCustom:
		e.custom.Draw(dc, slot)
	}
}

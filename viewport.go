package arbor

// Viewport shows its content panned and zoomed inside a fixed-size window.
//
// A screen point p maps to the content point (p + Pan) * Zoom. For the
// duration of each tick call the mouse event handed to the content carries
// content coordinates; the original coordinates are restored before the
// call returns, so siblings and ancestors never see the remapped position.
type Viewport struct {
	Pan           Point
	Zoom          float64
	Width, Height float64

	content Element
}

// NewViewport creates a Viewport of the given size with no pan and a zoom
// of 1.
func NewViewport(width, height float64, content Node) *Viewport {
	return &Viewport{Zoom: 1, Width: width, Height: height, content: Wrap(content)}
}

func (v *Viewport) Content() *Element { return &v.content }

// ToContent maps a screen point into content space.
func (v *Viewport) ToContent(p Point) Point {
	return p.Add(v.Pan).Scale(v.Zoom)
}

// ToScreen maps a content point back to screen space.
func (v *Viewport) ToScreen(p Point) Point {
	return p.Scale(1 / v.Zoom).Sub(v.Pan)
}

// PanBy moves the content by d screen units.
func (v *Viewport) PanBy(d Point) {
	v.Pan = v.Pan.Sub(d)
}

// ZoomAt multiplies Zoom by factor while keeping the content point under
// the screen point anchor in place.
func (v *Viewport) ZoomAt(anchor Point, factor float64) {
	c := v.ToContent(anchor)
	v.Zoom *= factor
	v.Pan = c.Scale(1 / v.Zoom).Sub(anchor)
}

func (v *Viewport) SizeRange() (w, h SizeRange) {
	return Exact(v.Width), Exact(v.Height)
}

func (v *Viewport) Bounds(slot Rect) Rect { return DefaultBounds(v, slot) }

// contentSlot is the viewport's bounds expressed in content space.
func (v *Viewport) contentSlot(slot Rect) Rect {
	b := v.Bounds(slot)
	lo, hi := v.ToContent(b.Min()), v.ToContent(b.Max())
	return Rect{lo.X, lo.Y, hi.X, hi.Y}
}

func (v *Viewport) DibsTick(tc TickContext, slot Rect, ev *Events) {
	restore := ev.remapMouse(v.Pan, v.Zoom)
	defer restore()
	v.content.DibsTick(tc, v.contentSlot(slot), ev)
}

func (v *Viewport) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	restore := ev.remapMouse(v.Pan, v.Zoom)
	defer restore()
	cs := v.contentSlot(slot)
	if ev.MouseOver(cs) {
		v.content.ActiveTick(tc, cs, ev)
	} else {
		v.content.InactiveTick(tc, cs, *ev)
	}
}

func (v *Viewport) InactiveTick(tc TickContext, slot Rect, ev Events) {
	// ev is a copy; nothing to restore.
	ev.remapMouse(v.Pan, v.Zoom)
	v.content.InactiveTick(tc, v.contentSlot(slot), ev)
}

// Draw paints the content through the draw context's view stack when it
// has one, clipped to the viewport and transformed like the input. Without
// a ViewContext the content is drawn untransformed in content space.
func (v *Viewport) Draw(dc DrawContext, slot Rect) {
	cs := v.contentSlot(slot)
	vc, ok := dc.(ViewContext)
	if !ok {
		v.content.Draw(dc, cs)
		return
	}
	vc.PushView(v.Bounds(slot), v.Pan, v.Zoom)
	v.content.Draw(vc, cs)
	vc.PopView()
}

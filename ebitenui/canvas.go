package ebitenui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/arbor"
)

// canvasView is one saved entry of the view stack.
type canvasView struct {
	dst *ebiten.Image
	geo ebiten.GeoM
}

// Canvas paints arbor draw calls onto an Ebitengine image. It implements
// arbor.ViewContext: each pushed view clips to a sub-image and maps content
// coordinates to the screen with the inverse of the viewport's input
// transform.
type Canvas struct {
	Fonts *Fonts

	dst   *ebiten.Image
	geo   ebiten.GeoM // content to screen
	stack []canvasView
}

// NewCanvas creates a Canvas drawing text with fonts. fonts may be nil, in
// which case DrawText does nothing.
func NewCanvas(fonts *Fonts) *Canvas {
	return &Canvas{Fonts: fonts}
}

// Begin targets screen for the next frame and resets the view stack.
func (c *Canvas) Begin(screen *ebiten.Image) {
	c.dst = screen
	c.geo.Reset()
	c.stack = c.stack[:0]
}

// Depth returns the number of views currently pushed.
func (c *Canvas) Depth() int { return len(c.stack) }

// screenRect maps r through the current view transform.
func (c *Canvas) screenRect(r arbor.Rect) (x0, y0, x1, y1 float64) {
	x0, y0 = c.geo.Apply(r.XMin, r.YMin)
	x1, y1 = c.geo.Apply(r.XMax, r.YMax)
	return x0, y0, x1, y1
}

func (c *Canvas) DrawRect(r arbor.Rect, col arbor.Color) {
	if col.A <= 0 {
		return
	}
	x0, y0, x1, y1 := c.screenRect(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), toNRGBA(col), false)
}

func (c *Canvas) DrawText(s string, topLeft arbor.Point, fontSize float64, col arbor.Color) {
	if c.Fonts == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(topLeft.X, topLeft.Y)
	op.GeoM.Concat(c.geo)
	op.ColorScale.Scale(
		float32(col.R*col.A),
		float32(col.G*col.A),
		float32(col.B*col.A),
		float32(col.A),
	)
	op.LineSpacing = c.Fonts.LineHeight(fontSize)
	text.Draw(c.dst, s, c.Fonts.Face(fontSize), op)
}

// PushView clips drawing to clip and maps a content point q to the screen
// point q/zoom - pan, both relative to the enclosing view.
func (c *Canvas) PushView(clip arbor.Rect, pan arbor.Point, zoom float64) {
	c.stack = append(c.stack, canvasView{dst: c.dst, geo: c.geo})

	x0, y0, x1, y1 := c.screenRect(clip)
	r := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(c.dst.Bounds())
	c.dst = c.dst.SubImage(r).(*ebiten.Image)

	var g ebiten.GeoM
	g.Scale(1/zoom, 1/zoom)
	g.Translate(-pan.X, -pan.Y)
	g.Concat(c.geo)
	c.geo = g
}

// PopView restores the view saved by the matching PushView.
func (c *Canvas) PopView() {
	n := len(c.stack) - 1
	if n < 0 {
		panic("arbor: PopView without PushView")
	}
	v := c.stack[n]
	c.stack = c.stack[:n]
	c.dst, c.geo = v.dst, v.geo
}

// toNRGBA converts a straight-alpha arbor color to 8-bit NRGBA.
func toNRGBA(c arbor.Color) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

package ebitenui

import (
	"github.com/phanxgames/arbor"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ZoomTween animates a Viewport's zoom while keeping the content under a
// fixed screen point in place.
type ZoomTween struct {
	Viewport *arbor.Viewport
	Anchor   arbor.Point

	tween *gween.Tween
	done  bool
}

// NewZoomTween creates a tween taking v from its current zoom to the given
// zoom over duration seconds.
func NewZoomTween(v *arbor.Viewport, anchor arbor.Point, to float64, duration float32, fn ease.TweenFunc) *ZoomTween {
	return &ZoomTween{
		Viewport: v,
		Anchor:   anchor,
		tween:    gween.New(float32(v.Zoom), float32(to), duration, fn),
	}
}

// Update advances the tween by dt seconds and reports whether it finished.
func (z *ZoomTween) Update(dt float32) bool {
	if z.done {
		return true
	}
	val, done := z.tween.Update(dt)
	if val > 0 {
		z.Viewport.ZoomAt(z.Anchor, float64(val)/z.Viewport.Zoom)
	}
	z.done = done
	return done
}

// Done reports whether the tween has finished.
func (z *ZoomTween) Done() bool { return z.done }

package arbor

import "math"

// Point is a 2D position or offset. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Rect is an axis-aligned rectangle described by its min and max corners.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// RectFromSize returns the rectangle with the given top-left corner and size.
func RectFromSize(origin Point, width, height float64) Rect {
	return Rect{origin.X, origin.Y, origin.X + width, origin.Y + height}
}

// Width returns XMax-XMin.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns YMax-YMin.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{r.XMin, r.YMin} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{r.XMax, r.YMax} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2}
}

// Contains reports whether p lies inside the rectangle. The min edges are
// inside, the max edges are not, so adjacent rectangles never both contain
// the same point.
func (r Rect) Contains(p Point) bool {
	return r.XMin <= p.X && p.X < r.XMax &&
		r.YMin <= p.Y && p.Y < r.YMax
}

// Inset shrinks the rectangle by the given amount on each side.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{r.XMin + left, r.YMin + top, r.XMax - right, r.YMax - bottom}
}

// Unbounded is the maximum of a SizeRange that accepts any size.
var Unbounded = math.Inf(1)

// SizeRange is the minimum and maximum extent a node accepts on one axis.
// Min is never negative. Max is Unbounded when the node takes whatever it is
// offered.
type SizeRange struct {
	Min, Max float64
}

// AnySize is the range of a node with no size opinion.
var AnySize = SizeRange{0, Unbounded}

// Exact returns a range whose minimum and maximum are both v.
func Exact(v float64) SizeRange { return SizeRange{v, v} }

// Bounded reports whether the maximum is finite.
func (s SizeRange) Bounded() bool { return !math.IsInf(s.Max, 1) }

// Clamp limits v to [Min, Max].
func (s SizeRange) Clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(v, s.Max))
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorGray        = Color{0.51, 0.51, 0.51, 1}
	ColorDodgerBlue  = Color{0.118, 0.565, 1, 1}
	ColorSkyBlue     = Color{0.4, 0.749, 1, 1}
	ColorBlue        = Color{0, 0.475, 0.945, 1}
	ColorTransparent = Color{}
)

// Direction selects the main axis of SplitBox and StackBox.
type Direction uint8

const (
	Row    Direction = iota // children laid out left to right
	Column                  // children laid out top to bottom
)

// main returns the component of (x, y) along the direction's main axis.
func (d Direction) main(x, y float64) float64 {
	if d == Column {
		return y
	}
	return x
}

// cross returns the component of (x, y) along the cross axis.
func (d Direction) cross(x, y float64) float64 {
	if d == Column {
		return x
	}
	return y
}

// span builds a rectangle from main-axis and cross-axis intervals.
func (d Direction) span(mainMin, mainMax, crossMin, crossMax float64) Rect {
	if d == Column {
		return Rect{crossMin, mainMin, crossMax, mainMax}
	}
	return Rect{mainMin, crossMin, mainMax, crossMax}
}

// Visibility controls how a widget takes part in hit testing and drawing.
type Visibility uint8

const (
	Occlude             Visibility = iota // hit test self and children; a claim hides nodes behind
	PassthroughSelf                       // skip own hit test, still test children
	PassthroughChildren                   // skip children's hit test, still test self
	Passthrough                           // skip hit test for self and children, still drawn
	Phantom                               // not hit tested or drawn, still takes up space
	Collapsed                             // not hit tested or drawn, takes up no space
)

// hitSelf reports whether the widget itself takes part in hit testing.
func (v Visibility) hitSelf() bool {
	return v == Occlude || v == PassthroughChildren
}

// hitChildren reports whether the widget's children take part in hit testing.
func (v Visibility) hitChildren() bool {
	return v == Occlude || v == PassthroughSelf
}

// hidden reports whether the widget is skipped by ticks and drawing.
func (v Visibility) hidden() bool {
	return v == Phantom || v == Collapsed
}

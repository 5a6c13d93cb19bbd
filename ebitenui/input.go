package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/arbor"
)

// Input is an arbor.InputSource reading the Ebitengine mouse. The left
// button is the primary button.
type Input struct{}

func (Input) MousePosition() arbor.Point {
	x, y := ebiten.CursorPosition()
	return arbor.Point{X: float64(x), Y: float64(y)}
}

func (Input) IsPrimaryPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (Input) IsPrimaryReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (Input) MouseWheelDelta() arbor.Point {
	x, y := ebiten.Wheel()
	return arbor.Point{X: x, Y: y}
}

package arbor

// InputSource is the backend capability the engine polls once per frame to
// build its Events snapshot.
type InputSource interface {
	MousePosition() Point
	IsPrimaryPressed() bool  // primary button went down this frame
	IsPrimaryReleased() bool // primary button went up this frame
	MouseWheelDelta() Point
}

// PollEvents reads src and returns the frame's Events snapshot. The mouse
// event is always present; its Press and Scroll sub-events only when
// something happened this frame.
func PollEvents(src InputSource) Events {
	m := MouseEvent{Position: src.MousePosition()}
	if src.IsPrimaryPressed() {
		m.Press = Some(struct{}{})
	}
	if wheel := src.MouseWheelDelta(); wheel != (Point{}) {
		m.Scroll = Some(wheel)
	}
	return Events{
		Mouse:           Some(m),
		PrimaryReleased: src.IsPrimaryReleased(),
	}
}

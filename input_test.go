package arbor

import "testing"

// fakeSource is an InputSource with fixed state.
type fakeSource struct {
	pos      Point
	pressed  bool
	released bool
	wheel    Point
}

func (f *fakeSource) MousePosition() Point    { return f.pos }
func (f *fakeSource) IsPrimaryPressed() bool  { return f.pressed }
func (f *fakeSource) IsPrimaryReleased() bool { return f.released }
func (f *fakeSource) MouseWheelDelta() Point  { return f.wheel }

func TestPollEvents(t *testing.T) {
	ev := PollEvents(&fakeSource{pos: Point{3, 4}})
	m, ok := ev.Mouse.Peek()
	if !ok || m.Position != (Point{3, 4}) {
		t.Fatalf("mouse = %+v, %v", m, ok)
	}
	if m.Press.IsSome() || m.Scroll.IsSome() || ev.PrimaryReleased {
		t.Error("idle frame should carry no press, scroll or release")
	}
}

func TestPollEvents_Activity(t *testing.T) {
	ev := PollEvents(&fakeSource{pos: Point{1, 1}, pressed: true, released: true, wheel: Point{0, -2}})
	m, _ := ev.Mouse.Peek()
	if !m.Press.IsSome() {
		t.Error("press should be present")
	}
	if d, ok := m.Scroll.Peek(); !ok || d != (Point{0, -2}) {
		t.Errorf("scroll = %v, %v", d, ok)
	}
	if !ev.PrimaryReleased {
		t.Error("release should be set")
	}
}

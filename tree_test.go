package arbor

import (
	"slices"
	"testing"
)

var treeScreen = Rect{0, 0, 200, 100}

func TestTreeUpdate(t *testing.T) {
	var log []string
	rec := newRecorder("r", &log)
	rec.claim = true
	tree := NewTree(rec)

	ev := tree.Update(nil, &fakeSource{pos: Point{10, 10}}, treeScreen)
	if !slices.Equal(log, []string{"dibs:r", "active:r"}) {
		t.Errorf("log = %v", log)
	}
	if !ev.Mouse.Claimed() {
		t.Error("returned events should show the claim")
	}
}

func TestTreeUpdate_PointerOffScreen(t *testing.T) {
	var log []string
	tree := NewTree(newRecorder("r", &log))

	ev := tree.Update(nil, &fakeSource{pos: Point{500, 10}}, treeScreen)
	if !slices.Equal(log, []string{"dibs:r", "inactive:r"}) {
		t.Errorf("log = %v", log)
	}
	if ev.Mouse.Claimed() {
		t.Error("nothing should claim an off-treeScreen pointer")
	}
}

func TestTreeDraw(t *testing.T) {
	var log []string
	a, b := newRecorder("a", &log), newRecorder("b", &log)
	tree := NewTree(NewOverlayBox(a, b))
	tree.Draw(&recordingDC{}, treeScreen)
	if got := filter(log, "draw:"); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("draw order = %v", got)
	}
}

func TestTreeClickButton(t *testing.T) {
	pressed := 0
	btn := NewButton("go", nil, func(PressContext) { pressed++ })
	tree := NewTree(NewStackBox(Column, 0, NewSizeBox(100, 30, btn)))

	in := NewInjectedInput(nil)
	in.InjectClick(50, 15)
	for range 2 {
		in.Advance()
		tree.Update(nil, in, treeScreen)
	}
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}
	if btn.State() != ButtonHover {
		t.Errorf("state after click = %v, want ButtonHover", btn.State())
	}
}

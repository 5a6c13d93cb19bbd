package arbor

import (
	"slices"
	"testing"
)

var buttonSlot = Rect{0, 0, 100, 40}

func TestButtonHoverPressRelease(t *testing.T) {
	var pressed []PressContext
	b := NewButton("ok", NewFill(ColorWhite), func(ctx PressContext) {
		pressed = append(pressed, ctx)
	})
	if b.State() != ButtonNormal {
		t.Fatalf("initial state = %v", b.State())
	}

	ev := mouseAt(10, 10)
	b.ActiveTick(nil, buttonSlot, &ev)
	if b.State() != ButtonHover {
		t.Errorf("hover: state = %v, want ButtonHover", b.State())
	}
	if !ev.Mouse.Claimed() {
		t.Error("hovered button should claim the mouse event")
	}

	ev = pressAt(12, 8)
	b.ActiveTick(nil, buttonSlot, &ev)
	if b.State() != ButtonPress {
		t.Errorf("press: state = %v, want ButtonPress", b.State())
	}
	if len(pressed) != 1 || pressed[0] != (PressContext{Name: "ok", Position: Point{12, 8}}) {
		t.Errorf("OnPress calls = %+v", pressed)
	}

	// Holding keeps the press state without firing again.
	ev = mouseAt(20, 8)
	b.ActiveTick(nil, buttonSlot, &ev)
	if b.State() != ButtonPress || len(pressed) != 1 {
		t.Errorf("hold: state = %v, presses = %d", b.State(), len(pressed))
	}

	ev = releaseAt(20, 8)
	b.ActiveTick(nil, buttonSlot, &ev)
	if b.State() != ButtonHover {
		t.Errorf("release over button: state = %v, want ButtonHover", b.State())
	}
}

func TestButtonReleaseWhileOccluded(t *testing.T) {
	b := NewButton("b", nil, nil)
	ev := pressAt(5, 5)
	b.ActiveTick(nil, buttonSlot, &ev)

	// Something in front took the pointer; the release still resets.
	ev = releaseAt(5, 5)
	ev.Mouse.Take()
	b.ActiveTick(nil, buttonSlot, &ev)
	if b.State() != ButtonNormal {
		t.Errorf("state = %v, want ButtonNormal", b.State())
	}
}

func TestButtonInactiveResets(t *testing.T) {
	b := NewButton("b", nil, nil)
	ev := pressAt(5, 5)
	b.ActiveTick(nil, buttonSlot, &ev)

	b.InactiveTick(nil, buttonSlot, mouseAt(500, 500))
	if b.State() != ButtonNormal {
		t.Errorf("state = %v, want ButtonNormal", b.State())
	}
}

func TestButtonContentClaimsFirst(t *testing.T) {
	var log []string
	rec := newRecorder("label", &log)
	rec.claim = true
	fired := false
	b := NewButton("b", rec, func(PressContext) { fired = true })

	ev := pressAt(5, 5)
	b.ActiveTick(nil, buttonSlot, &ev)
	if fired {
		t.Error("button fired although its content took the press")
	}
	if b.State() != ButtonNormal {
		t.Errorf("state = %v, want ButtonNormal", b.State())
	}
	if !slices.Equal(log, []string{"active:label"}) {
		t.Errorf("log = %v", log)
	}
}

func TestButtonDisabled(t *testing.T) {
	fired := false
	b := NewButton("b", nil, func(PressContext) { fired = true })
	b.SetEnabled(false)

	ev := pressAt(5, 5)
	b.ActiveTick(nil, buttonSlot, &ev)
	if fired || b.State() != ButtonDisabled {
		t.Errorf("disabled button: fired=%v state=%v", fired, b.State())
	}
	if ev.Mouse.Claimed() {
		t.Error("disabled button should not claim")
	}
	b.InactiveTick(nil, buttonSlot, mouseAt(500, 500))
	if b.State() != ButtonDisabled {
		t.Errorf("inactive tick re-enabled the button: %v", b.State())
	}
	if b.Color() != b.Style.Disabled {
		t.Errorf("color = %v, want disabled color", b.Color())
	}

	b.SetEnabled(true)
	if b.State() != ButtonNormal {
		t.Errorf("after enable: state = %v", b.State())
	}
}

func TestButtonVisibility(t *testing.T) {
	tests := []struct {
		vis          Visibility
		wantClaim    bool
		wantLog      []string
		wantPressed  bool
		wantDrawCall int
	}{
		{Occlude, true, []string{"active:c"}, true, 1},
		{PassthroughSelf, false, []string{"active:c"}, false, 1},
		{PassthroughChildren, true, []string{"inactive:c"}, true, 1},
		{Passthrough, false, []string{"inactive:c"}, false, 1},
		{Phantom, false, nil, false, 0},
		{Collapsed, false, nil, false, 0},
	}
	for _, tt := range tests {
		var log []string
		fired := false
		b := NewButton("b", newRecorder("c", &log), func(PressContext) { fired = true })
		b.Visibility = tt.vis

		ev := pressAt(5, 5)
		b.DibsTick(nil, buttonSlot, &ev)
		log = slices.DeleteFunc(log, func(s string) bool { return s == "dibs:c" })
		b.ActiveTick(nil, buttonSlot, &ev)

		if ev.Mouse.Claimed() != tt.wantClaim {
			t.Errorf("vis %d: claimed = %v, want %v", tt.vis, ev.Mouse.Claimed(), tt.wantClaim)
		}
		if fired != tt.wantPressed {
			t.Errorf("vis %d: fired = %v, want %v", tt.vis, fired, tt.wantPressed)
		}
		if !slices.Equal(log, tt.wantLog) {
			t.Errorf("vis %d: log = %v, want %v", tt.vis, log, tt.wantLog)
		}

		dc := &recordingDC{}
		b.Draw(dc, buttonSlot)
		if len(dc.calls) != tt.wantDrawCall {
			t.Errorf("vis %d: draw calls = %d, want %d", tt.vis, len(dc.calls), tt.wantDrawCall)
		}
	}
}

func TestButtonSizeRange(t *testing.T) {
	var log []string
	rec := newRecorder("c", &log)
	rec.w, rec.h = Exact(40), SizeRange{10, 20}
	b := NewButton("b", rec, nil)

	for _, vis := range []Visibility{Occlude, Passthrough, Phantom} {
		b.Visibility = vis
		w, h := b.SizeRange()
		if w != Exact(40) || h != (SizeRange{10, 20}) {
			t.Errorf("vis %d: range = %v %v", vis, w, h)
		}
	}
	b.Visibility = Collapsed
	if w, h := b.SizeRange(); w != (SizeRange{}) || h != (SizeRange{}) {
		t.Errorf("collapsed range = %v %v", w, h)
	}
}

func TestButtonDrawColor(t *testing.T) {
	var log []string
	b := NewButton("b", newRecorder("c", &log), nil)
	ev := mouseAt(5, 5)
	b.ActiveTick(nil, buttonSlot, &ev)

	dc := &recordingDC{}
	b.Draw(dc, buttonSlot)
	if len(dc.calls) != 1 || dc.calls[0].color != DefaultButtonStyle.Hover || dc.calls[0].rect != buttonSlot {
		t.Errorf("draw = %+v", dc.calls)
	}
	if !slices.Equal(filter(log, "draw:"), []string{"c"}) {
		t.Errorf("content not drawn after background: %v", log)
	}
}

package arbor

import (
	"fmt"
	"strings"
	"testing"
)

func TestDefaultBounds(t *testing.T) {
	var log []string
	tests := []struct {
		name string
		w, h SizeRange
		slot Rect
		want Rect
	}{
		{"unbounded fills slot", AnySize, AnySize, Rect{10, 10, 110, 60}, Rect{10, 10, 110, 60}},
		{"max shrinks", SizeRange{0, 40}, SizeRange{0, 20}, Rect{10, 10, 110, 60}, Rect{10, 10, 50, 30}},
		{"max larger than slot", SizeRange{0, 500}, Exact(50), Rect{0, 0, 100, 50}, Rect{0, 0, 100, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder("r", &log)
			r.w, r.h = tt.w, tt.h
			if got := DefaultBounds(r, tt.slot); got != tt.want {
				t.Errorf("DefaultBounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultBounds_DebugPanicsOnSmallSlot(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	var log []string
	r := newRecorder("r", &log)
	r.w = SizeRange{50, 100}

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic for slot below minimum, got none")
		}
		if msg := fmt.Sprint(rec); !strings.Contains(msg, "smaller than minimum") {
			t.Errorf("panic message = %s", msg)
		}
	}()
	DefaultBounds(r, Rect{0, 0, 20, 20})
}

func TestDefaultBounds_ReleaseModeNoPanic(t *testing.T) {
	var log []string
	r := newRecorder("r", &log)
	r.w = SizeRange{50, 100}
	got := DefaultBounds(r, Rect{0, 0, 20, 20})
	if got != (Rect{0, 0, 20, 20}) {
		t.Errorf("DefaultBounds = %v", got)
	}
}

func TestDefaultBounds_FloatTolerance(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	var log []string
	r := newRecorder("r", &log)
	a, b := 0.1, 0.2
	r.w = Exact(a + b)
	// 0.3 < 0.1+0.2 in float64; must not panic.
	DefaultBounds(r, Rect{0, 0, 0.3, 10})
}

func TestFillDrawsBounds(t *testing.T) {
	f := NewFill(ColorWhite)
	dc := &recordingDC{}
	f.Draw(dc, Rect{1, 2, 3, 4})
	if len(dc.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(dc.calls))
	}
	c := dc.calls[0]
	if c.op != "rect" || c.rect != (Rect{1, 2, 3, 4}) || c.color != ColorWhite {
		t.Errorf("call = %+v", c)
	}
}

func TestEmptyDoesNothing(t *testing.T) {
	var e Empty
	w, h := e.SizeRange()
	if w != AnySize || h != AnySize {
		t.Errorf("SizeRange = %v %v", w, h)
	}
	dc := &recordingDC{}
	ev := pressAt(1, 1)
	e.DibsTick(nil, Rect{0, 0, 5, 5}, &ev)
	e.ActiveTick(nil, Rect{0, 0, 5, 5}, &ev)
	e.Draw(dc, Rect{0, 0, 5, 5})
	if len(dc.calls) != 0 || ev.Mouse.Claimed() {
		t.Error("Empty should not draw or consume events")
	}
}

// ticker counts inactive ticks and uses them while hovered as well.
type ticker struct {
	Leaf
	inactive int
}

func (k *ticker) SizeRange() (w, h SizeRange) { return AnySize, AnySize }

func (k *ticker) Bounds(slot Rect) Rect { return DefaultBounds(k, slot) }

func (k *ticker) InactiveTick(TickContext, Rect, Events) { k.inactive++ }

func (k *ticker) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	LeafActive(k, tc, slot, ev)
}

func TestLeafActive(t *testing.T) {
	k := &ticker{}
	tree := NewTree(k)
	ev := tree.Update(nil, &fakeSource{pos: Point{5, 5}}, Rect{0, 0, 10, 10})
	if k.inactive != 1 {
		t.Errorf("inactive ticks = %d, want 1 while hovered", k.inactive)
	}
	if ev.Mouse.Claimed() {
		t.Error("LeafActive must not consume the mouse event")
	}
}

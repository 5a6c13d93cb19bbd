package arbor

import (
	"fmt"
	"strings"
	"testing"
)

func TestEventTakeOnce(t *testing.T) {
	e := Some(7)
	if v, ok := e.Peek(); !ok || v != 7 {
		t.Fatalf("Peek = %v, %v", v, ok)
	}
	if e.Claimed() {
		t.Fatal("fresh event should not be claimed")
	}
	v, ok := e.Take()
	if !ok || v != 7 {
		t.Fatalf("Take = %v, %v", v, ok)
	}
	if !e.IsNone() || !e.Claimed() {
		t.Error("taken event should be empty and claimed")
	}
	if _, ok := e.Take(); ok {
		t.Error("second Take should fail")
	}
}

func TestEventNone(t *testing.T) {
	e := None[int]()
	if e.IsSome() {
		t.Fatal("None should be empty")
	}
	if _, ok := e.Take(); ok {
		t.Error("Take on None should fail")
	}
	if e.Claimed() {
		t.Error("Take on None should not mark the event claimed")
	}
	// Dibs on an event that never had a payload is not an error.
	if _, ok := e.TakeWithDibs(); ok {
		t.Error("TakeWithDibs on None should fail")
	}
}

func TestEventTakeIf(t *testing.T) {
	e := Some(3)
	if _, ok := e.TakeIf(func(v int) bool { return v > 5 }); ok {
		t.Fatal("TakeIf should reject")
	}
	if e.IsNone() {
		t.Fatal("rejected TakeIf must leave the payload")
	}
	if v, ok := e.TakeIf(func(v int) bool { return v < 5 }); !ok || v != 3 {
		t.Errorf("TakeIf = %v, %v", v, ok)
	}
}

func TestEventTakeWithDibs(t *testing.T) {
	e := Some("drag")
	v, ok := e.TakeWithDibs()
	if !ok || v != "drag" {
		t.Fatalf("TakeWithDibs = %q, %v", v, ok)
	}
}

func TestEventTakeWithDibs_PanicsWhenClaimed(t *testing.T) {
	e := Some(1)
	e.Take()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on double claim, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "already claimed") {
			t.Errorf("panic message should mention 'already claimed', got: %s", msg)
		}
	}()
	e.TakeWithDibs()
}

func TestEventsMouseOver(t *testing.T) {
	ev := mouseAt(5, 5)
	r := Rect{0, 0, 10, 10}
	if !ev.MouseOver(r) {
		t.Fatal("MouseOver should be true")
	}
	if ev.MouseOver(Rect{10, 10, 20, 20}) {
		t.Error("MouseOver outside should be false")
	}
	if _, ok := ev.TakeMouseOver(Rect{10, 10, 20, 20}); ok {
		t.Error("TakeMouseOver outside should fail")
	}
	if _, ok := ev.TakeMouseOver(r); !ok {
		t.Fatal("TakeMouseOver inside should succeed")
	}
	if ev.MouseOver(r) {
		t.Error("claimed mouse event should no longer be over anything")
	}
	if _, ok := ev.MousePosition(); ok {
		t.Error("MousePosition of claimed event should report false")
	}
}

func TestRemapMouse(t *testing.T) {
	ev := mouseAt(10, 20)
	restore := ev.remapMouse(Point{5, -10}, 2)
	if p, _ := ev.MousePosition(); p != (Point{30, 20}) {
		t.Fatalf("remapped = %v, want {30 20}", p)
	}
	restore()
	if p, _ := ev.MousePosition(); p != (Point{10, 20}) {
		t.Errorf("restored = %v, want {10 20}", p)
	}
}

func TestRemapMouse_ClaimedInBetween(t *testing.T) {
	ev := mouseAt(10, 20)
	restore := ev.remapMouse(Point{}, 3)
	m, ok := ev.Mouse.Take()
	if !ok || m.Position != (Point{30, 60}) {
		t.Fatalf("taken = %v, %v", m.Position, ok)
	}
	restore()
	if ev.Mouse.IsSome() {
		t.Error("restore must not bring back a claimed event")
	}
}

func TestRemapMouse_NoEvent(t *testing.T) {
	var ev Events
	restore := ev.remapMouse(Point{1, 1}, 2)
	restore()
	if ev.Mouse.IsSome() {
		t.Error("remap should not create an event")
	}
}

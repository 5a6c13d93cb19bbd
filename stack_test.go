package arbor

import (
	"slices"
	"testing"
)

// childRects collects the rectangles c hands its children for slot.
func childRects(c Collection, slot Rect) []Rect {
	var out []Rect
	for _, r := range c.Children(slot) {
		out = append(out, r)
	}
	return out
}

func TestStackBoxSizeRange(t *testing.T) {
	var log []string
	a, b := newRecorder("a", &log), newRecorder("b", &log)
	a.w, a.h = SizeRange{10, 20}, SizeRange{5, 5}
	b.w, b.h = SizeRange{30, 40}, SizeRange{2, 8}

	w, h := NewStackBox(Row, 3, a, b).SizeRange()
	if w != (SizeRange{43, 63}) || h != (SizeRange{5, 8}) {
		t.Errorf("row range = %v %v", w, h)
	}

	w, h = NewStackBox(Column, 3, a, b).SizeRange()
	if w != (SizeRange{30, 40}) || h != (SizeRange{10, 16}) {
		t.Errorf("column range = %v %v", w, h)
	}

	b.w = AnySize
	if w, _ := NewStackBox(Row, 0, a, b).SizeRange(); w.Bounded() {
		t.Errorf("one unbounded child should make the row unbounded, got %v", w)
	}
}

func TestStackBoxEmpty(t *testing.T) {
	b := NewStackBox(Row, 10)
	w, h := b.SizeRange()
	if w != (SizeRange{}) || h != (SizeRange{}) {
		t.Errorf("empty stack range = %v %v", w, h)
	}
	if got := childRects(b, Rect{0, 0, 100, 100}); len(got) != 0 {
		t.Errorf("empty stack yielded %v", got)
	}
}

func TestStackBoxPlacement(t *testing.T) {
	var log []string
	exact := func(w, h float64) *recorder {
		r := newRecorder("r", &log)
		r.w, r.h = Exact(w), Exact(h)
		return r
	}
	b := NewStackBox(Column, 5, exact(10, 20), exact(30, 10), exact(20, 15))
	got := childRects(b, Rect{100, 100, 200, 300})
	want := []Rect{
		{100, 100, 130, 120},
		{100, 125, 130, 135},
		{100, 140, 130, 155},
	}
	if !slices.Equal(got, want) {
		t.Errorf("rects = %v, want %v", got, want)
	}
}

func TestStackBoxDistributesLeftover(t *testing.T) {
	var log []string
	fixed := newRecorder("fixed", &log)
	fixed.w = Exact(20)
	capped := newRecorder("capped", &log)
	capped.w = SizeRange{0, 30}
	free := newRecorder("free", &log)
	free.w = SizeRange{10, Unbounded}

	b := NewStackBox(Row, 0, fixed, capped, free)
	got := childRects(b, Rect{0, 0, 130, 10})
	// 100 spare: capped grows to 30, free takes the remaining 70 on top of 10.
	want := []Rect{
		{0, 0, 20, 10},
		{20, 0, 50, 10},
		{50, 0, 130, 10},
	}
	if !slices.Equal(got, want) {
		t.Errorf("rects = %v, want %v", got, want)
	}
}

func TestStackBoxBoundedShrinks(t *testing.T) {
	var log []string
	a := newRecorder("a", &log)
	a.w, a.h = Exact(10), Exact(10)
	b := NewStackBox(Row, 0, a)
	if got := b.Bounds(Rect{0, 0, 100, 100}); got != (Rect{0, 0, 10, 10}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestChildListEditing(t *testing.T) {
	var log []string
	b := NewStackBox(Row, 0)
	a, c, d := newRecorder("a", &log), newRecorder("c", &log), newRecorder("d", &log)
	b.AddChildren(a, d)
	b.AddChildAt(c, 1)
	if b.NumChildren() != 3 || b.ChildAt(1).Custom() != c {
		t.Fatalf("after AddChildAt: %d children", b.NumChildren())
	}

	b.SetChildIndex(0, 2) // c d a
	order := []Node{b.ChildAt(0).Custom(), b.ChildAt(1).Custom(), b.ChildAt(2).Custom()}
	if order[0] != c || order[1] != d || order[2] != a {
		t.Errorf("SetChildIndex order wrong")
	}

	removed := b.RemoveChildAt(1)
	if removed.Custom() != d || b.NumChildren() != 2 {
		t.Errorf("RemoveChildAt returned %v", removed.Kind())
	}

	b.RemoveChildren()
	if b.NumChildren() != 0 {
		t.Errorf("RemoveChildren left %d", b.NumChildren())
	}
}

func TestChildListIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out of range index")
		}
	}()
	b := NewStackBox(Row, 0)
	b.AddChildAt(nil, 1)
}

func TestStackBoxSequencesIndependent(t *testing.T) {
	var log []string
	a := newRecorder("a", &log)
	a.w, a.h = Exact(50), Exact(10)
	b := NewStackBox(Row, 0, a)

	first := b.Children(Rect{0, 0, 100, 10})
	back := b.ChildrenBackward(Rect{1000, 0, 1100, 10})
	if got := childRects(b, Rect{500, 0, 600, 10}); got[0] != (Rect{500, 0, 550, 10}) {
		t.Fatalf("third layout = %v", got)
	}
	for _, r := range first {
		if r != (Rect{0, 0, 50, 10}) {
			t.Errorf("first sequence rect = %v, want its own slot's", r)
		}
	}
	for _, r := range back {
		if r != (Rect{1000, 0, 1050, 10}) {
			t.Errorf("backward sequence rect = %v", r)
		}
	}
}

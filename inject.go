package arbor

// injectedFrame is the input state of one synthetic frame.
type injectedFrame struct {
	pos      Point
	pressed  bool
	released bool
	wheel    Point
}

// InjectedInput is an InputSource fed from a queue of synthetic frames.
// Each call to Advance moves to the next queued frame. With nothing queued
// it reads from Passthrough if set; otherwise the pointer stays where the
// last frame left it with no button activity.
//
// Coordinates are screen coordinates, the same space real mouse input
// arrives in.
type InjectedInput struct {
	Passthrough InputSource

	queue []injectedFrame
	cur   injectedFrame
	live  bool
}

// NewInjectedInput creates an InjectedInput. passthrough may be nil.
func NewInjectedInput(passthrough InputSource) *InjectedInput {
	return &InjectedInput{Passthrough: passthrough, live: passthrough != nil}
}

// InjectMove queues a frame moving the pointer to (x, y).
func (in *InjectedInput) InjectMove(x, y float64) {
	in.queue = append(in.queue, injectedFrame{pos: Point{x, y}})
}

// InjectPress queues a frame pressing the primary button at (x, y).
func (in *InjectedInput) InjectPress(x, y float64) {
	in.queue = append(in.queue, injectedFrame{pos: Point{x, y}, pressed: true})
}

// InjectRelease queues a frame releasing the primary button at (x, y).
func (in *InjectedInput) InjectRelease(x, y float64) {
	in.queue = append(in.queue, injectedFrame{pos: Point{x, y}, released: true})
}

// InjectClick queues a press followed by a release at the same
// coordinates. Consumes two frames.
func (in *InjectedInput) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes frames frames.
// Minimum frames is 2 (press + release).
func (in *InjectedInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}

// InjectScroll queues a frame at (x, y) with a wheel delta of (dx, dy).
func (in *InjectedInput) InjectScroll(x, y, dx, dy float64) {
	in.queue = append(in.queue, injectedFrame{pos: Point{x, y}, wheel: Point{dx, dy}})
}

// Pending returns the number of queued frames not yet played.
func (in *InjectedInput) Pending() int { return len(in.queue) }

// Advance moves to the next frame. Call it once per frame before the tree
// polls the input.
func (in *InjectedInput) Advance() {
	if len(in.queue) == 0 {
		if in.Passthrough != nil {
			in.live = true
			return
		}
		in.cur = injectedFrame{pos: in.cur.pos}
		return
	}
	in.live = false
	in.cur = in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
}

func (in *InjectedInput) MousePosition() Point {
	if in.live {
		return in.Passthrough.MousePosition()
	}
	return in.cur.pos
}

func (in *InjectedInput) IsPrimaryPressed() bool {
	if in.live {
		return in.Passthrough.IsPrimaryPressed()
	}
	return in.cur.pressed
}

func (in *InjectedInput) IsPrimaryReleased() bool {
	if in.live {
		return in.Passthrough.IsPrimaryReleased()
	}
	return in.cur.released
}

func (in *InjectedInput) MouseWheelDelta() Point {
	if in.live {
		return in.Passthrough.MouseWheelDelta()
	}
	return in.cur.wheel
}

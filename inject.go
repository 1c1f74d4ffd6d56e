package zoomage

// injectFrame is one frame of synthetic input: the full set of pointers held
// down during that frame. An empty frame releases everything.
type injectFrame struct {
	pointers []Pointer
}

const (
	injectPointerA = 1
	injectPointerB = 2
	// doubleTapGapFrames separates the two taps of InjectDoubleTap so the
	// second press lands after the minimum double-tap interval at 60 TPS.
	doubleTapGapFrames = 3
)

// InjectFrame queues one frame during which exactly the given pointers are
// down. The frame is consumed by the next Poll, replacing device input.
func (in *TouchInput) InjectFrame(pointers ...Pointer) {
	frame := injectFrame{pointers: make([]Pointer, len(pointers))}
	copy(frame.pointers, pointers)
	in.injectQueue = append(in.injectQueue, frame)
}

// InjectPress queues a single-pointer press at (x, y).
func (in *TouchInput) InjectPress(x, y float64) {
	in.InjectFrame(Pointer{ID: injectPointerA, X: x, Y: y})
}

// InjectMove queues a single-pointer move to (x, y) with the pointer held.
func (in *TouchInput) InjectMove(x, y float64) {
	in.InjectFrame(Pointer{ID: injectPointerA, X: x, Y: y})
}

// InjectRelease queues a frame with no pointers down.
func (in *TouchInput) InjectRelease() {
	in.InjectFrame()
}

// InjectWait queues frames with no pointers down.
func (in *TouchInput) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		in.InjectRelease()
	}
}

// InjectTap queues a press followed by a release at (x, y). Consumes two
// frames.
func (in *TouchInput) InjectTap(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease()
}

// InjectDoubleTap queues two taps at (x, y) close enough in time to form a
// double tap.
func (in *TouchInput) InjectDoubleTap(x, y float64) {
	in.InjectTap(x, y)
	in.InjectWait(doubleTapGapFrames - 1)
	in.InjectTap(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and a release after
// reaching (toX, toY). Minimum frames is 2.
func (in *TouchInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectMove(toX, toY)
	in.InjectRelease()
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger distance goes from fromSpan to toSpan over the given number
// of move frames, then lifts both fingers.
func (in *TouchInput) InjectPinch(cx, cy, fromSpan, toSpan float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	pair := func(span float64) []Pointer {
		return []Pointer{
			{ID: injectPointerA, X: cx - span/2, Y: cy},
			{ID: injectPointerB, X: cx + span/2, Y: cy},
		}
	}
	start := pair(fromSpan)
	in.InjectFrame(start[0])
	in.InjectFrame(start...)
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		in.InjectFrame(pair(fromSpan + (toSpan-fromSpan)*t)...)
	}
	in.InjectFrame(pair(toSpan)[0])
	in.InjectRelease()
}

// Pending reports how many injected frames are still queued.
func (in *TouchInput) Pending() int {
	return len(in.injectQueue)
}

// popInjected removes and returns the next queued frame.
func (in *TouchInput) popInjected() (injectFrame, bool) {
	if len(in.injectQueue) == 0 {
		return injectFrame{}, false
	}
	frame := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
	return frame, true
}

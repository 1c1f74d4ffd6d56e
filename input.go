package zoomage

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	maxPointers  = 10 // pointer 0 = mouse, 1-9 = touch
	mousePointer = 0
)

// TouchInput turns Ebitengine touch and mouse state into PointerEvent
// streams. Each touch keeps a stable pointer ID (1-9) for as long as it is
// down; the left mouse button acts as pointer 0 while no touch is active.
//
// Synthetic input queued with the Inject methods replaces device input one
// frame at a time.
type TouchInput struct {
	// MouseEnabled maps the left mouse button to pointer 0.
	MouseEnabled bool

	clock  float64
	active []Pointer

	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchBuf  []ebiten.TouchID

	injectQueue []injectFrame
	events      []PointerEvent
}

// NewTouchInput creates a TouchInput with mouse emulation enabled.
func NewTouchInput() *TouchInput {
	return &TouchInput{MouseEnabled: true}
}

// Clock returns the input clock in seconds, advanced by Poll.
func (in *TouchInput) Clock() float64 {
	return in.clock
}

// Poll advances the clock by dt seconds, samples one frame of input and
// returns the resulting events in delivery order. The returned slice is
// reused by the next Poll.
func (in *TouchInput) Poll(dt float32) []PointerEvent {
	in.clock += float64(dt)
	if frame, ok := in.popInjected(); ok {
		return in.diff(frame.pointers)
	}
	return in.diff(in.readDevices())
}

// readDevices samples touches, falling back to the mouse.
func (in *TouchInput) readDevices() []Pointer {
	in.touchBuf = inpututil.AppendJustReleasedTouchIDs(in.touchBuf[:0])
	for _, tid := range in.touchBuf {
		in.releaseSlot(tid)
	}

	in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])
	var cur []Pointer
	for _, tid := range in.touchBuf {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		cur = append(cur, Pointer{ID: slot, X: float64(tx), Y: float64(ty)})
	}
	if len(cur) == 0 && in.MouseEnabled && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		cur = append(cur, Pointer{ID: mousePointer, X: float64(mx), Y: float64(my)})
	}
	return cur
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *TouchInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (in *TouchInput) releaseSlot(tid ebiten.TouchID) {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			in.touchUsed[i] = false
			in.touchMap[i] = 0
			return
		}
	}
}

// diff compares the pointers down this frame with the previous frame and
// emits moves, then releases, then presses.
func (in *TouchInput) diff(cur []Pointer) []PointerEvent {
	in.events = in.events[:0]

	moved := false
	for i := range in.active {
		if p, ok := findPointer(cur, in.active[i].ID); ok {
			if p.X != in.active[i].X || p.Y != in.active[i].Y {
				in.active[i] = p
				moved = true
			}
		}
	}
	if moved {
		in.emit(ActionMove, 0)
	}

	for i := 0; i < len(in.active); {
		if _, ok := findPointer(cur, in.active[i].ID); ok {
			i++
			continue
		}
		if len(in.active) == 1 {
			in.emit(ActionUp, 0)
		} else {
			in.emit(ActionPointerUp, i)
		}
		in.active = append(in.active[:i], in.active[i+1:]...)
	}

	for _, p := range cur {
		if _, ok := findPointer(in.active, p.ID); ok {
			continue
		}
		in.active = append(in.active, p)
		if len(in.active) == 1 {
			in.emit(ActionDown, 0)
		} else {
			in.emit(ActionPointerDown, len(in.active)-1)
		}
	}
	return in.events
}

// emit appends an event carrying a snapshot of the active pointers.
func (in *TouchInput) emit(action PointerAction, index int) {
	pointers := make([]Pointer, len(in.active))
	copy(pointers, in.active)
	in.events = append(in.events, PointerEvent{
		Action:      action,
		Pointers:    pointers,
		ActionIndex: index,
		Time:        in.clock,
	})
}

func findPointer(ps []Pointer, id int) (Pointer, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}

package zoomage

// Vec2 is a 2D vector used for pointer positions and focal points.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the rectangle's far edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the rectangle's far edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Axis selects the horizontal or vertical component of a 2D quantity.
type Axis uint8

const (
	AxisX Axis = iota // horizontal
	AxisY             // vertical
)

// PointerAction identifies the kind of a PointerEvent.
type PointerAction uint8

const (
	ActionDown        PointerAction = iota // first pointer went down
	ActionPointerDown                      // an additional pointer went down
	ActionMove                             // one or more pointers moved
	ActionPointerUp                        // a non-final pointer went up
	ActionUp                               // the final pointer went up
	ActionCancel                           // the sequence was taken away (e.g. by a parent)
)

var actionNames = [...]string{"down", "pointer-down", "move", "pointer-up", "up", "cancel"}

func (a PointerAction) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Pointer is a single contact in a PointerEvent.
type Pointer struct {
	ID   int
	X, Y float64
}

// PointerEvent carries every active pointer at one instant. For ActionPointerDown
// and ActionPointerUp, ActionIndex is the index in Pointers of the pointer that
// changed state. Pointers includes the lifting pointer on up actions.
type PointerEvent struct {
	Action      PointerAction
	Pointers    []Pointer
	ActionIndex int
	// Time is the event timestamp in seconds since an arbitrary origin.
	Time float64
}

// PointerCount returns the number of pointers carried by the event.
func (e PointerEvent) PointerCount() int {
	return len(e.Pointers)
}

// TransformEventType identifies a kind of TransformEvent.
type TransformEventType uint8

const (
	EventGestureStart  TransformEventType = iota // first pointer down on an interactive view
	EventGestureEnd                              // last pointer up or sequence cancelled
	EventDoubleTapZoom                           // double tap started a zoom-in animation
	EventReset                                   // the transform returned (or started returning) home
	EventAnimationEnd                            // an animation snapped to its target
)

// TransformEvent is emitted to an EventSink when the engine's transform
// reaches a notable state.
type TransformEvent struct {
	Type   TransformEventType
	Matrix Matrix
	// Scale is the current scale relative to the captured initial scale
	// (1 when no initial state has been captured yet).
	Scale float64
}

// EventSink receives TransformEvents. See the ecs package for a Donburi
// adapter.
type EventSink interface {
	EmitTransform(event TransformEvent)
}

// InterceptController is implemented by containers that can take a pointer
// sequence away from a child. A ZoomView reports after every event whether
// its parent should stay out of the current sequence.
type InterceptController interface {
	RequestDisallowIntercept(disallow bool)
}

// PanCapable is implemented by children that can answer whether they can
// still pan in a direction. direction < 0 asks about the near edge (left or
// top), direction > 0 about the far edge.
type PanCapable interface {
	CanPanFurther(axis Axis, direction int) bool
}

package zoomage

import "math"

const (
	touchSlop        = 8.0   // pixels a tap may wander before it becomes a drag
	doubleTapSlop    = 100.0 // max distance between the two downs of a double tap
	doubleTapTimeout = 0.3   // seconds
	doubleTapMinTime = 0.04  // seconds; faster second downs are treated as bounces
	minScaleSpan     = 10.0  // pixels; smaller spans never start a scale gesture
)

// --- Scale detection ---

// scaleSignal reports the transitions a scaleDetector went through while
// consuming one event.
type scaleSignal struct {
	ended  bool
	began  bool
	scaled bool
	// factor is the span ratio relative to the span when the gesture began.
	factor float64
}

// scaleDetector derives a focal point from all active pointers and a scale
// factor from the spread of two or more pointers.
type scaleDetector struct {
	inProgress  bool
	focus       Vec2
	span        float64
	initialSpan float64
}

// onEvent consumes one pointer event. The lifting pointer of an
// ActionPointerUp is excluded from focus and span.
func (d *scaleDetector) onEvent(ev PointerEvent) scaleSignal {
	var sig scaleSignal
	skip := -1
	if ev.Action == ActionPointerUp {
		skip = ev.ActionIndex
	}

	var sumX, sumY float64
	count := 0
	for i, p := range ev.Pointers {
		if i == skip {
			continue
		}
		sumX += p.X
		sumY += p.Y
		count++
	}
	if count == 0 {
		return sig
	}
	fx := sumX / float64(count)
	fy := sumY / float64(count)

	var devX, devY float64
	for i, p := range ev.Pointers {
		if i == skip {
			continue
		}
		devX += math.Abs(p.X - fx)
		devY += math.Abs(p.Y - fy)
	}
	spanX := devX / float64(count) * 2
	spanY := devY / float64(count) * 2
	span := math.Hypot(spanX, spanY)

	d.focus = Vec2{X: fx, Y: fy}
	d.span = span

	configChanged := ev.Action != ActionMove
	if configChanged && d.inProgress {
		d.inProgress = false
		sig.ended = true
	}
	if ev.Action == ActionUp || ev.Action == ActionCancel {
		return sig
	}

	if !d.inProgress && count >= 2 && span >= minScaleSpan {
		d.inProgress = true
		d.initialSpan = span
		sig.began = true
	}
	if ev.Action == ActionMove && d.inProgress {
		sig.scaled = true
		sig.factor = span / d.initialSpan
	}
	return sig
}

// --- Tap detection ---

// tapSignal reports the tap callbacks a tapDetector produced for one event
// or one clock tick.
type tapSignal struct {
	singleTapUp        bool // a pointer lifted without leaving the tap region
	singleTapConfirmed bool // no second tap followed within the timeout
	doubleTapEvent     bool // an event belonging to the second tap of a double tap
	doubleTapUp        bool // the second tap of a double tap lifted
}

// tapDetector recognizes single and double taps from a pointer stream.
type tapDetector struct {
	stillDown         bool
	inTapRegion       bool
	inBiggerTapRegion bool
	doubleTapping     bool
	deferConfirm      bool

	// confirmAt is the time the pending single tap is confirmed; valid
	// while hasConfirm is set.
	confirmAt  float64
	hasConfirm bool

	currentDown Vec2
	hasPrevTap  bool
	prevUpTime  float64
}

// tick fires a pending single-tap confirmation whose deadline has passed.
func (d *tapDetector) tick(now float64) tapSignal {
	var sig tapSignal
	if !d.hasConfirm || now < d.confirmAt {
		return sig
	}
	d.hasConfirm = false
	if d.stillDown {
		d.deferConfirm = true
	} else {
		sig.singleTapConfirmed = true
	}
	return sig
}

// onEvent consumes one pointer event.
func (d *tapDetector) onEvent(ev PointerEvent) tapSignal {
	var sig tapSignal
	if len(ev.Pointers) == 0 {
		return sig
	}
	p := ev.Pointers[0]
	if ev.Action == ActionPointerUp || ev.Action == ActionPointerDown {
		p = ev.Pointers[min(max(ev.ActionIndex, 0), len(ev.Pointers)-1)]
	}
	pos := Vec2{X: p.X, Y: p.Y}

	switch ev.Action {
	case ActionDown:
		hadConfirm := d.hasConfirm
		d.hasConfirm = false
		if hadConfirm && d.hasPrevTap && d.isDoubleTap(pos, ev.Time) {
			d.doubleTapping = true
			sig.doubleTapEvent = true
		} else {
			d.confirmAt = ev.Time + doubleTapTimeout
			d.hasConfirm = true
		}
		d.currentDown = pos
		d.stillDown = true
		d.inTapRegion = true
		d.inBiggerTapRegion = true
		d.deferConfirm = false

	case ActionPointerDown:
		d.cancelTaps()

	case ActionMove:
		if d.doubleTapping {
			sig.doubleTapEvent = true
		} else if d.inTapRegion {
			dx := pos.X - d.currentDown.X
			dy := pos.Y - d.currentDown.Y
			if dx*dx+dy*dy > touchSlop*touchSlop {
				d.inTapRegion = false
				d.inBiggerTapRegion = false
				d.hasConfirm = false
			}
		}

	case ActionUp:
		d.stillDown = false
		if d.doubleTapping {
			sig.doubleTapEvent = true
			sig.doubleTapUp = true
		} else if d.inTapRegion {
			sig.singleTapUp = true
			if d.deferConfirm {
				sig.singleTapConfirmed = true
			}
		}
		d.hasPrevTap = d.inBiggerTapRegion && !d.doubleTapping
		d.prevUpTime = ev.Time
		d.doubleTapping = false
		d.deferConfirm = false

	case ActionCancel:
		d.cancelTaps()
		d.stillDown = false
		d.hasPrevTap = false
	}
	return sig
}

// isDoubleTap reports whether a down at pos and time completes a double tap
// with the previous tap.
func (d *tapDetector) isDoubleTap(pos Vec2, t float64) bool {
	dt := t - d.prevUpTime
	if dt > doubleTapTimeout || dt < doubleTapMinTime {
		return false
	}
	dx := pos.X - d.currentDown.X
	dy := pos.Y - d.currentDown.Y
	return dx*dx+dy*dy < doubleTapSlop*doubleTapSlop
}

func (d *tapDetector) cancelTaps() {
	d.hasConfirm = false
	d.doubleTapping = false
	d.inTapRegion = false
	d.inBiggerTapRegion = false
	d.deferConfirm = false
}

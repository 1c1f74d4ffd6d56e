package zoomage

import "math"

// Pager arbitrates horizontal drags between a paging container and its
// children. It never owns a transform; the only state it keeps is whether
// paging is enabled and the progress of the current intercept decision.
type Pager struct {
	// Enabled turns paging on. A disabled Pager never intercepts.
	Enabled bool

	disallow     bool
	intercepting bool
	down         Vec2
	last         Vec2
}

// NewPager returns an enabled Pager.
func NewPager() *Pager {
	return &Pager{Enabled: true}
}

// RequestDisallowIntercept is called by a child after every event to keep
// the pager out of the current sequence.
func (p *Pager) RequestDisallowIntercept(disallow bool) {
	p.disallow = disallow
}

// Intercepting reports whether the pager has taken over the current sequence.
func (p *Pager) Intercepting() bool {
	return p.intercepting
}

// CanChildConsumeHorizontalDrag reports whether child should keep a
// horizontal drag of dx. A child that can still pan against the drag keeps
// it; otherwise the pager may take over. Children that cannot answer fall
// back to the container default, which lets the pager swipe.
func (p *Pager) CanChildConsumeHorizontalDrag(child any, dx float64) bool {
	if !p.Enabled {
		return true
	}
	if pc, ok := child.(PanCapable); ok {
		return pc.CanPanFurther(AxisX, -sign(dx))
	}
	return false
}

// ShouldIntercept inspects an event before child sees it and reports whether
// the pager takes over the sequence. Once it has, it keeps the sequence until
// the last pointer lifts.
func (p *Pager) ShouldIntercept(ev PointerEvent, child any) bool {
	if !p.Enabled || len(ev.Pointers) == 0 {
		return false
	}
	pt := ev.Pointers[0]
	pos := Vec2{X: pt.X, Y: pt.Y}

	switch ev.Action {
	case ActionDown:
		p.down = pos
		p.last = pos
		p.intercepting = false
		p.disallow = false
		return false
	case ActionUp, ActionCancel:
		was := p.intercepting
		p.intercepting = false
		return was
	}
	if p.intercepting {
		return true
	}
	if p.disallow || ev.Action != ActionMove || len(ev.Pointers) > 1 {
		p.last = pos
		return false
	}

	dx := pos.X - p.last.X
	xDiff := math.Abs(pos.X - p.down.X)
	yDiff := math.Abs(pos.Y - p.down.Y)
	if dx != 0 && p.CanChildConsumeHorizontalDrag(child, dx) {
		p.last = pos
		return false
	}
	if xDiff > touchSlop && xDiff*0.5 > yDiff {
		p.intercepting = true
	}
	p.last = pos
	return p.intercepting
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

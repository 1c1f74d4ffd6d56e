package zoomage

// updateBounds recomputes the displayed bounds from the current transform.
func (v *ZoomView) updateBounds() Rect {
	v.bounds = displayedBounds(v.matrix, v.imgW, v.imgH)
	return v.bounds
}

// axisGeometry returns the near edge, far edge and size of the displayed
// bounds on axis, plus the viewport extent on that axis.
func (v *ZoomView) axisGeometry(axis Axis) (near, far, size, extent float64) {
	b := v.bounds
	if axis == AxisY {
		return b.Y, b.Bottom(), b.Height, v.viewH
	}
	return b.X, b.Right(), b.Width, v.viewW
}

// panDelta limits a translation delta on axis. The restriction policy runs
// only when RestrictBounds is set; the runaway clamp always runs so the image
// can never be dragged entirely out of reach.
func (v *ZoomView) panDelta(axis Axis, d float64) float64 {
	if v.cfg.RestrictBounds {
		d = v.restrictDelta(axis, d)
	}
	near, far, _, extent := v.axisGeometry(axis)
	if far+d < 0 {
		d = -far
	} else if near+d > extent {
		d = extent - near
	}
	return d
}

// restrictDelta keeps an image edge that is already on the correct side of
// the viewport edge from crossing it. Larger-than-viewport images may not
// open a gap at either edge; smaller images may not leave the viewport.
// While a scale gesture is in progress, larger images are exempt so zooming
// about the focal point is not fought.
func (v *ZoomView) restrictDelta(axis Axis, d float64) float64 {
	near, far, size, extent := v.axisGeometry(axis)
	scaling := v.scale.inProgress
	if size >= extent {
		if scaling {
			return d
		}
		if near <= 0 && near+d > 0 {
			return -near
		}
		if far >= extent && far+d < extent {
			return extent - far
		}
		return d
	}
	if scaling {
		return d
	}
	if near >= 0 && near+d < 0 {
		return -near
	}
	if far <= extent && far+d > extent {
		return extent - far
	}
	return d
}

// CanPanFurther reports whether the image can still be panned to reveal
// hidden content. direction < 0 asks about the near edge (left or top),
// direction > 0 about the far edge. It returns false at the initial scale,
// even when the home transform overflows the viewport, so a pager can always
// swipe an unzoomed page. It also returns false without an image, when
// panning is disabled, or for direction 0.
func (v *ZoomView) CanPanFurther(axis Axis, direction int) bool {
	if v.atInitialScale() {
		return false
	}
	v.updateBounds()
	near, far, size, extent := v.axisGeometry(axis)
	if size == 0 || !v.cfg.Scrollable {
		return false
	}
	switch {
	case direction < 0:
		return near < -panEpsilon
	case direction > 0:
		return far > extent+panEpsilon
	}
	return false
}

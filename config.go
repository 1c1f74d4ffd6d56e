package zoomage

import (
	"errors"
	"fmt"
)

// ErrInvalidScaleRange is returned when a scale range is not a pair of
// positive values with min < max.
var ErrInvalidScaleRange = errors.New("zoomage: invalid scale range")

// AutoResetMode selects what happens to the transform when the last pointer
// lifts.
type AutoResetMode uint8

const (
	// AutoResetUnder animates home when the scale is at or below the initial
	// scale, and auto-centers otherwise.
	AutoResetUnder AutoResetMode = iota
	// AutoResetOver animates home when the scale is at or above the initial
	// scale, and auto-centers otherwise.
	AutoResetOver
	// AutoResetAlways always animates home.
	AutoResetAlways
	// AutoResetNever only auto-centers.
	AutoResetNever
)

const (
	defaultMinScale       = 0.6
	defaultMaxScale       = 8.0
	defaultDoubleTapScale = 2.0
)

// Config holds the options of a ZoomView. Scale values are multiples of the
// initial scale captured on the first gesture.
type Config struct {
	// Zoomable enables pinch zoom.
	Zoomable bool
	// Scrollable enables panning.
	Scrollable bool
	// DoubleTapToZoom enables the double-tap zoom toggle.
	DoubleTapToZoom bool
	// RestrictBounds keeps image edges from being dragged into the viewport
	// interior. Off by default so panning feels loose at the edges.
	RestrictBounds bool
	// AnimateOnReset animates resets triggered by double tap.
	AnimateOnReset bool
	// AutoCenter animates the image back inside the viewport edges when a
	// gesture ends above the initial scale.
	AutoCenter bool
	// AutoResetMode decides between reset and auto-center on release.
	AutoResetMode AutoResetMode

	// DoubleTapScale is the zoom multiplier applied by a double tap. It is
	// clamped into [MinScale, MaxScale].
	DoubleTapScale float64
	// MinScale and MaxScale bound the scale relative to the initial scale.
	MinScale float64
	MaxScale float64
}

// DefaultConfig returns a Config with every feature enabled except
// RestrictBounds, min/max scale 0.6/8 and a double-tap multiplier of 2.
func DefaultConfig() Config {
	return Config{
		Zoomable:        true,
		Scrollable:      true,
		DoubleTapToZoom: true,
		AnimateOnReset:  true,
		AutoCenter:      true,
		AutoResetMode:   AutoResetUnder,
		DoubleTapScale:  defaultDoubleTapScale,
		MinScale:        defaultMinScale,
		MaxScale:        defaultMaxScale,
	}
}

// Validate reports whether the scale range is usable.
func (c Config) Validate() error {
	return validateScaleRange(c.MinScale, c.MaxScale)
}

func validateScaleRange(minScale, maxScale float64) error {
	if minScale <= 0 || maxScale <= 0 {
		return fmt.Errorf("%w: min %v and max %v must be positive", ErrInvalidScaleRange, minScale, maxScale)
	}
	if minScale >= maxScale {
		return fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidScaleRange, minScale, maxScale)
	}
	return nil
}

// clampDoubleTapScale returns f limited to the configured scale range.
func (c Config) clampDoubleTapScale(f float64) float64 {
	return max(c.MinScale, min(f, c.MaxScale))
}

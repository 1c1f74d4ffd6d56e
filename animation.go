package zoomage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// animDuration is the length in seconds of every reset, double-tap and
// edge-snap animation.
const animDuration float32 = 0.2

// matrixAnim interpolates scale and translation from begin to end.
// The tween produces the blend fraction; the matrix math stays in float64.
type matrixAnim struct {
	begin Matrix
	end   Matrix
	tween *gween.Tween
}

func newMatrixAnim(begin, end Matrix) *matrixAnim {
	return &matrixAnim{
		begin: begin,
		end:   end,
		tween: gween.New(0, 1, animDuration, ease.Linear),
	}
}

// update advances the animation by dt seconds and returns the frame's matrix.
// On completion the result is exactly end.
func (a *matrixAnim) update(dt float32) (Matrix, bool) {
	t, done := a.tween.Update(dt)
	if done {
		return a.end, true
	}
	return lerpMatrix(a.begin, a.end, float64(t)), false
}

// axisAnim interpolates a single translation component. X and Y edge snaps
// run as independent axisAnims.
type axisAnim struct {
	axis  Axis
	from  float64
	to    float64
	tween *gween.Tween
}

func newAxisAnim(axis Axis, from, to float64) *axisAnim {
	return &axisAnim{
		axis:  axis,
		from:  from,
		to:    to,
		tween: gween.New(0, 1, animDuration, ease.Linear),
	}
}

// apply advances the animation by dt seconds and writes the component into m.
func (a *axisAnim) apply(m Matrix, dt float32) (Matrix, bool) {
	t, done := a.tween.Update(dt)
	if done {
		return m.setTrans(a.axis, a.to), true
	}
	return m.setTrans(a.axis, a.from+(a.to-a.from)*float64(t)), false
}

package zoomage

import "github.com/hajimehoshi/ebiten/v2"

// Matrix is a 2D affine transform from image pixel space to viewport space.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// The engine only ever produces scale and translation; b and c stay zero.
type Matrix [6]float64

// IdentityMatrix is the identity affine matrix.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// ScaleX returns the horizontal scale component.
func (m Matrix) ScaleX() float64 { return m[0] }

// ScaleY returns the vertical scale component.
func (m Matrix) ScaleY() float64 { return m[3] }

// TransX returns the horizontal translation component.
func (m Matrix) TransX() float64 { return m[4] }

// TransY returns the vertical translation component.
func (m Matrix) TransY() float64 { return m[5] }

// trans returns the translation component for an axis.
func (m Matrix) trans(axis Axis) float64 {
	if axis == AxisY {
		return m[5]
	}
	return m[4]
}

// setTrans returns a copy of m with the translation on axis replaced.
func (m Matrix) setTrans(axis Axis, v float64) Matrix {
	if axis == AxisY {
		m[5] = v
	} else {
		m[4] = v
	}
	return m
}

// Mul returns m * other: other is applied first, then m.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// PostTranslate returns m followed by a translation of (dx, dy).
func (m Matrix) PostTranslate(dx, dy float64) Matrix {
	m[4] += dx
	m[5] += dy
	return m
}

// PostScale returns m followed by a uniform scale of s about (px, py).
func (m Matrix) PostScale(s, px, py float64) Matrix {
	return Matrix{
		m[0] * s,
		m[1] * s,
		m[2] * s,
		m[3] * s,
		px + (m[4]-px)*s,
		py + (m[5]-py)*s,
	}
}

// Invert returns the inverse of m.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply maps a point from image space to viewport space.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// GeoM converts m to an ebiten.GeoM for use in DrawImageOptions.
func (m Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// lerpMatrix blends the scale and translation components of begin and end by t.
// Skew terms are taken from end.
func lerpMatrix(begin, end Matrix, t float64) Matrix {
	out := end
	out[0] = begin[0] + (end[0]-begin[0])*t
	out[3] = begin[3] + (end[3]-begin[3])*t
	out[4] = begin[4] + (end[4]-begin[4])*t
	out[5] = begin[5] + (end[5]-begin[5])*t
	return out
}

// displayedBounds returns the on-screen extent of an image of size (w, h)
// drawn with m. Zero-sized images produce a zero Rect.
func displayedBounds(m Matrix, w, h float64) Rect {
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: m[4], Y: m[5], Width: w * m[0], Height: h * m[3]}
}

// fitCenter returns the transform that scales an image of size (imgW, imgH)
// uniformly to fit inside a (viewW, viewH) viewport, centered.
func fitCenter(imgW, imgH, viewW, viewH float64) Matrix {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return IdentityMatrix
	}
	s := min(viewW/imgW, viewH/imgH)
	return Matrix{s, 0, 0, s, (viewW - imgW*s) / 2, (viewH - imgH*s) / 2}
}

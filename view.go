package zoomage

import "github.com/hajimehoshi/ebiten/v2"

// panEpsilon absorbs float noise when deciding whether an edge is hidden.
const panEpsilon = 1e-6

// initialState is the home transform captured on the first interactive
// event, together with the absolute scale bounds derived from it.
type initialState struct {
	matrix   Matrix
	scale    float64
	minScale float64
	maxScale float64
}

// gestureContext is the per-interaction state correlated across events.
type gestureContext struct {
	last             Vec2
	prevPointerCount int
	// scaleStep is the pending relative scale for the current event.
	scaleStep float64
	// startScale is the absolute scale when the current scale gesture began.
	startScale        float64
	doubleTapDetected bool
	singleTapPending  bool
}

// ZoomView owns the transform of one image inside one viewport and turns
// pointer streams into pinch zoom, pan, double-tap zoom and animated
// snap-back.
//
// A ZoomView is not safe for concurrent use; feed it events and frame ticks
// from the same goroutine.
type ZoomView struct {
	// Clickable views leave pointer events to their host.
	Clickable bool

	cfg     Config
	matrix  Matrix
	enabled bool

	viewW, viewH float64
	imgW, imgH   float64

	start   *initialState
	bounds  Rect
	gesture gestureContext
	scale   scaleDetector
	taps    tapDetector

	anim      *matrixAnim
	axisAnims [2]*axisAnim

	parent InterceptController
	sink   EventSink
	debug  bool
	clock  float64
}

// NewZoomView creates a ZoomView with the given configuration. It returns an
// error wrapping ErrInvalidScaleRange if the scale range is unusable. The
// double-tap multiplier is clamped into the scale range.
func NewZoomView(cfg Config) (*ZoomView, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.DoubleTapScale = cfg.clampDoubleTapScale(cfg.DoubleTapScale)
	return &ZoomView{
		enabled: true,
		cfg:     cfg,
		matrix:  IdentityMatrix,
		gesture: gestureContext{scaleStep: 1},
	}, nil
}

// Config returns the view's current configuration.
func (v *ZoomView) Config() Config {
	return v.cfg
}

// SetScaleRange replaces the min/max scale multipliers. The initial state is
// discarded and recaptured on the next gesture.
func (v *ZoomView) SetScaleRange(minScale, maxScale float64) error {
	if err := validateScaleRange(minScale, maxScale); err != nil {
		return err
	}
	v.cfg.MinScale = minScale
	v.cfg.MaxScale = maxScale
	v.cfg.DoubleTapScale = v.cfg.clampDoubleTapScale(v.cfg.DoubleTapScale)
	v.start = nil
	return nil
}

// SetDoubleTapScale sets the double-tap zoom multiplier, clamped into the
// configured scale range.
func (v *ZoomView) SetDoubleTapScale(f float64) {
	v.cfg.DoubleTapScale = v.cfg.clampDoubleTapScale(f)
}

// SetViewport sets the viewport size. Both values must be positive.
func (v *ZoomView) SetViewport(w, h float64) {
	v.viewW, v.viewH = w, h
	v.start = nil
}

// Viewport returns the viewport size.
func (v *ZoomView) Viewport() (w, h float64) {
	return v.viewW, v.viewH
}

// SetImageSize sets the intrinsic pixel size of the displayed image. A new
// image starts from the fitted transform; any zoom or pan of the previous
// image is dropped and the initial state is recaptured on the next gesture.
func (v *ZoomView) SetImageSize(w, h float64) {
	v.imgW, v.imgH = w, h
	v.start = nil
	v.FitCenter()
}

// SetEnabled turns pointer handling on or off. Disabling returns the
// transform to the initial state without animation.
func (v *ZoomView) SetEnabled(enabled bool) {
	v.enabled = enabled
	if !enabled {
		v.Reset(false)
	}
}

// IsEnabled reports whether the view handles pointer events.
func (v *ZoomView) IsEnabled() bool {
	return v.enabled
}

// ClearImage removes the image. Bounds degrade to a zero Rect and the view
// reports that it cannot pan.
func (v *ZoomView) ClearImage() {
	v.SetImageSize(0, 0)
}

// FitCenter sets the transform that fits the image inside the viewport,
// centered, and cancels any animation.
func (v *ZoomView) FitCenter() {
	v.cancelAnimations()
	v.matrix = fitCenter(v.imgW, v.imgH, v.viewW, v.viewH)
}

// SetMatrix replaces the current transform and cancels any animation.
func (v *ZoomView) SetMatrix(m Matrix) {
	v.cancelAnimations()
	v.matrix = m
}

// Matrix returns the current transform.
func (v *ZoomView) Matrix() Matrix {
	return v.matrix
}

// DisplayedBounds returns the image's on-screen extent under the current
// transform.
func (v *ZoomView) DisplayedBounds() Rect {
	return v.updateBounds()
}

// CurrentScaleFactor returns the absolute scale as a multiple of the
// captured initial scale, or 1 if nothing has been captured yet.
func (v *ZoomView) CurrentScaleFactor() float64 {
	if v.start == nil || v.start.scale == 0 {
		return 1
	}
	return v.matrix.ScaleX() / v.start.scale
}

// IsAnimating reports whether a reset, zoom or edge-snap animation is running.
func (v *ZoomView) IsAnimating() bool {
	return v.anim != nil || v.axisAnims[AxisX] != nil || v.axisAnims[AxisY] != nil
}

// SetParent sets the container that is told, after every event, whether it
// should stay out of the current pointer sequence.
func (v *ZoomView) SetParent(parent InterceptController) {
	v.parent = parent
}

// SetEventSink sets the optional receiver of TransformEvents.
func (v *ZoomView) SetEventSink(sink EventSink) {
	v.sink = sink
}

// DrawImage draws img onto dst with the current transform, shifted by
// (offsetX, offsetY).
func (v *ZoomView) DrawImage(dst, img *ebiten.Image, offsetX, offsetY float64) {
	if dst == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = Matrix{1, 0, 0, 1, offsetX, offsetY}.Mul(v.matrix).GeoM()
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// ViewToImage maps a viewport point to image pixel coordinates.
func (v *ZoomView) ViewToImage(x, y float64) (float64, float64) {
	return v.matrix.Invert().Apply(x, y)
}

// ImageToView maps an image pixel to viewport coordinates.
func (v *ZoomView) ImageToView(x, y float64) (float64, float64) {
	return v.matrix.Apply(x, y)
}

// --- Event handling ---

// interactive reports whether the view handles pointer events itself.
func (v *ZoomView) interactive() bool {
	return !v.Clickable && v.enabled && (v.cfg.Zoomable || v.cfg.Scrollable)
}

// HandlePointerEvent feeds one pointer event to the engine and returns true
// if the view consumed it. Non-interactive views return false and leave the
// event untouched. Events without pointers are consumed as no-ops.
func (v *ZoomView) HandlePointerEvent(ev PointerEvent) bool {
	if !v.interactive() {
		return false
	}
	if len(ev.Pointers) == 0 {
		return true
	}

	v.advanceClock(ev.Time)
	if v.start == nil {
		v.captureStart()
	}
	if ev.Action == ActionDown {
		v.finishAnimations()
		v.emit(EventGestureStart)
	}

	count := len(ev.Pointers)
	v.updateBounds()

	v.onScaleSignal(v.scale.onEvent(ev))
	v.onTapSignal(v.taps.onEvent(ev))

	if v.cfg.DoubleTapToZoom && v.gesture.doubleTapDetected {
		v.gesture.singleTapPending = false
		v.doubleTap()
	} else if !v.gesture.singleTapPending {
		v.dragOrScale(ev, count)
	}
	v.gesture.doubleTapDetected = false

	v.reportIntercept(count)
	v.gesture.prevPointerCount = count
	return true
}

// Update advances animations and pending tap confirmation by dt seconds.
// Call it once per frame.
func (v *ZoomView) Update(dt float32) {
	v.advanceClock(v.clock + float64(dt))

	if v.anim != nil {
		m, done := v.anim.update(dt)
		v.matrix = m
		if done {
			v.anim = nil
			v.emit(EventAnimationEnd)
		}
	}
	for i, a := range v.axisAnims {
		if a == nil {
			continue
		}
		m, done := a.apply(v.matrix, dt)
		v.matrix = m
		if done {
			v.axisAnims[i] = nil
			if !v.IsAnimating() {
				v.emit(EventAnimationEnd)
			}
		}
	}
}

// advanceClock moves the engine clock forward to now and fires a pending
// single-tap confirmation.
func (v *ZoomView) advanceClock(now float64) {
	if now > v.clock {
		v.clock = now
	}
	v.onTapSignal(v.taps.tick(v.clock))
}

func (v *ZoomView) captureStart() {
	s := v.matrix.ScaleX()
	v.start = &initialState{
		matrix:   v.matrix,
		scale:    s,
		minScale: s * v.cfg.MinScale,
		maxScale: s * v.cfg.MaxScale,
	}
	v.debugf("captured initial state scale=%.4f matrix=%v", s, v.matrix)
}

func (v *ZoomView) onScaleSignal(sig scaleSignal) {
	if sig.ended {
		v.gesture.scaleStep = 1
	}
	if sig.began {
		v.gesture.startScale = v.matrix.ScaleX()
	}
	if sig.scaled {
		v.gesture.scaleStep = v.scaleStep(sig.factor)
	}
}

// scaleStep returns the relative step that takes the current scale to
// startScale*factor, clipped so the result stays inside the absolute bounds.
func (v *ZoomView) scaleStep(factor float64) float64 {
	cur := v.matrix.ScaleX()
	if cur == 0 {
		return 1
	}
	step := v.gesture.startScale * factor / cur
	projected := step * cur
	if projected < v.start.minScale {
		step = v.start.minScale / cur
	} else if projected > v.start.maxScale {
		step = v.start.maxScale / cur
	}
	return step
}

func (v *ZoomView) onTapSignal(sig tapSignal) {
	if sig.singleTapUp {
		v.gesture.singleTapPending = true
	}
	if sig.singleTapConfirmed {
		v.gesture.singleTapPending = false
	}
	if sig.doubleTapEvent {
		v.gesture.singleTapPending = false
	}
	if sig.doubleTapUp {
		v.gesture.doubleTapDetected = true
	}
}

// doubleTap toggles between the initial transform and a zoom about the tap.
// An in-flight animation counts as already at its target.
func (v *ZoomView) doubleTap() {
	current := v.matrix
	if v.anim != nil {
		current = v.anim.end
	}
	if current.ScaleX() != v.start.scale {
		v.debugf("double tap: reset from scale %.4f", current.ScaleX())
		v.Reset(v.cfg.AnimateOnReset)
		return
	}
	f := v.cfg.DoubleTapScale
	target := current.PostScale(f, v.scale.focus.X, v.scale.focus.Y)
	v.debugf("double tap: zoom x%.2f about (%.1f, %.1f)", f, v.scale.focus.X, v.scale.focus.Y)
	v.animateTo(target)
	v.emit(EventDoubleTapZoom)
}

// dragOrScale runs the pan/zoom branch for one event.
func (v *ZoomView) dragOrScale(ev PointerEvent, count int) {
	focus := v.scale.focus
	if ev.Action == ActionDown || count != v.gesture.prevPointerCount {
		v.gesture.last = focus
	} else if ev.Action == ActionMove {
		m := v.matrix
		if v.cfg.Scrollable {
			dx := v.panDelta(AxisX, focus.X-v.gesture.last.X)
			dy := v.panDelta(AxisY, focus.Y-v.gesture.last.Y)
			m = m.PostTranslate(dx, dy)
		}
		if v.cfg.Zoomable && v.gesture.scaleStep != 1 {
			m = v.applyScaleStep(m, focus)
		}
		v.gesture.scaleStep = 1
		v.matrix = m
		v.gesture.last = focus
	}

	if ev.Action == ActionUp || ev.Action == ActionCancel {
		v.gesture.scaleStep = 1
		v.settle()
		v.emit(EventGestureEnd)
	}
}

// applyScaleStep scales m about focus by the pending step. When the step was
// clipped to a bound, the resulting scale is pinned to that bound exactly.
func (v *ZoomView) applyScaleStep(m Matrix, focus Vec2) Matrix {
	out := m.PostScale(v.gesture.scaleStep, focus.X, focus.Y)
	target := out.ScaleX()
	if target < v.start.minScale {
		target = v.start.minScale
	} else if target > v.start.maxScale {
		target = v.start.maxScale
	} else {
		return out
	}
	out[3] *= target / out[0]
	out[0] = target
	return out
}

// reportIntercept tells the parent whether it should stay out of the current
// sequence: while panning a zoomed image, or while two or more pointers are
// down on a zoomable view.
func (v *ZoomView) reportIntercept(count int) {
	if v.parent == nil {
		return
	}
	disallow := (v.cfg.Scrollable && count >= 1 && !v.atInitialScale()) ||
		(v.cfg.Zoomable && count >= 2)
	v.parent.RequestDisallowIntercept(disallow)
}

// atInitialScale reports whether an initial state has been captured and the
// current scale equals it.
func (v *ZoomView) atInitialScale() bool {
	return v.start != nil && v.matrix.ScaleX() == v.start.scale
}

// --- Reset and settle ---

// Reset returns the transform to the initial state, animated over 200ms or
// instantly. It does nothing before the initial state has been captured.
func (v *ZoomView) Reset(animate bool) {
	if v.start == nil {
		return
	}
	if animate && v.matrix != v.start.matrix {
		v.animateTo(v.start.matrix)
	} else {
		v.cancelAnimations()
		v.matrix = v.start.matrix
	}
	v.emit(EventReset)
}

// settle applies the release policy after the last pointer lifts.
func (v *ZoomView) settle() {
	cur, home := v.matrix.ScaleX(), v.start.scale
	switch v.cfg.AutoResetMode {
	case AutoResetUnder:
		if cur <= home {
			v.Reset(true)
		} else {
			v.center()
		}
	case AutoResetOver:
		if cur >= home {
			v.Reset(true)
		} else {
			v.center()
		}
	case AutoResetAlways:
		v.Reset(true)
	case AutoResetNever:
		v.center()
	}
}

// center animates each axis independently back to the nearest position that
// satisfies the viewport edges.
func (v *ZoomView) center() {
	if !v.cfg.AutoCenter {
		return
	}
	v.updateBounds()
	v.centerAxis(AxisX)
	v.centerAxis(AxisY)
}

func (v *ZoomView) centerAxis(axis Axis) {
	near, far, size, extent := v.axisGeometry(axis)
	if size == 0 {
		return
	}
	trans := v.matrix.trans(axis)
	if size > extent {
		if near > 0 {
			v.animateAxis(axis, trans-near)
		} else if far < extent {
			v.animateAxis(axis, trans+extent-far)
		}
		return
	}
	if near < 0 {
		v.animateAxis(axis, trans-near)
	} else if far > extent {
		v.animateAxis(axis, trans+extent-far)
	}
}

// --- Animation control ---

func (v *ZoomView) animateTo(target Matrix) {
	v.axisAnims = [2]*axisAnim{}
	v.anim = newMatrixAnim(v.matrix, target)
}

func (v *ZoomView) animateAxis(axis Axis, to float64) {
	v.anim = nil
	v.axisAnims[axis] = newAxisAnim(axis, v.matrix.trans(axis), to)
}

// finishAnimations snaps every in-flight animation to its target.
func (v *ZoomView) finishAnimations() {
	if v.anim != nil {
		v.matrix = v.anim.end
	}
	for _, a := range v.axisAnims {
		if a != nil {
			v.matrix = v.matrix.setTrans(a.axis, a.to)
		}
	}
	v.cancelAnimations()
}

func (v *ZoomView) cancelAnimations() {
	v.anim = nil
	v.axisAnims = [2]*axisAnim{}
}

func (v *ZoomView) emit(t TransformEventType) {
	e := TransformEvent{Type: t, Matrix: v.matrix, Scale: v.CurrentScaleFactor()}
	v.debugf("%s scale=%.4f", e.Type, e.Scale)
	if v.sink != nil {
		v.sink.EmitTransform(e)
	}
}

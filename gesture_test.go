package zoomage

import "testing"

func ptr(id int, x, y float64) Pointer {
	return Pointer{ID: id, X: x, Y: y}
}

func evt(action PointerAction, t float64, index int, ps ...Pointer) PointerEvent {
	return PointerEvent{Action: action, Pointers: ps, ActionIndex: index, Time: t}
}

func TestScaleDetectorPinch(t *testing.T) {
	var d scaleDetector

	sig := d.onEvent(evt(ActionDown, 0, 0, ptr(1, 400, 500)))
	if sig.began || sig.scaled || d.inProgress {
		t.Fatalf("single pointer started a scale gesture: %+v", sig)
	}
	if d.focus != (Vec2{X: 400, Y: 500}) {
		t.Errorf("focus = %v, want (400, 500)", d.focus)
	}

	sig = d.onEvent(evt(ActionPointerDown, 0.01, 1, ptr(1, 400, 500), ptr(2, 600, 500)))
	if !sig.began {
		t.Fatal("second pointer did not begin a scale gesture")
	}
	assertNear(t, "span", d.span, 200)
	if d.focus != (Vec2{X: 500, Y: 500}) {
		t.Errorf("focus = %v, want (500, 500)", d.focus)
	}

	sig = d.onEvent(evt(ActionMove, 0.02, 0, ptr(1, 300, 500), ptr(2, 700, 500)))
	if !sig.scaled {
		t.Fatal("move did not report a scale")
	}
	assertNear(t, "factor", sig.factor, 2)

	sig = d.onEvent(evt(ActionPointerUp, 0.03, 1, ptr(1, 300, 500), ptr(2, 700, 500)))
	if !sig.ended || d.inProgress {
		t.Fatalf("pointer up did not end the gesture: %+v", sig)
	}
	if d.focus != (Vec2{X: 300, Y: 500}) {
		t.Errorf("focus after pointer up = %v, want the remaining pointer", d.focus)
	}
}

func TestScaleDetectorMinSpan(t *testing.T) {
	var d scaleDetector
	d.onEvent(evt(ActionDown, 0, 0, ptr(1, 500, 500)))
	sig := d.onEvent(evt(ActionPointerDown, 0.01, 1, ptr(1, 500, 500), ptr(2, 505, 500)))
	if sig.began || d.inProgress {
		t.Error("span below the minimum began a scale gesture")
	}
}

func TestScaleDetectorCancelEnds(t *testing.T) {
	var d scaleDetector
	d.onEvent(evt(ActionDown, 0, 0, ptr(1, 400, 500)))
	d.onEvent(evt(ActionPointerDown, 0.01, 1, ptr(1, 400, 500), ptr(2, 600, 500)))
	sig := d.onEvent(evt(ActionCancel, 0.02, 0, ptr(1, 400, 500), ptr(2, 600, 500)))
	if !sig.ended || d.inProgress {
		t.Errorf("cancel did not end the gesture: %+v", sig)
	}
}

func TestTapDetectorSingleTapConfirm(t *testing.T) {
	var d tapDetector
	d.onEvent(evt(ActionDown, 0, 0, ptr(1, 100, 100)))
	sig := d.onEvent(evt(ActionUp, 0.05, 0, ptr(1, 102, 101)))
	if !sig.singleTapUp {
		t.Fatal("expected singleTapUp")
	}
	if sig := d.tick(0.2); sig.singleTapConfirmed {
		t.Error("confirmed before the double-tap timeout")
	}
	if sig := d.tick(0.3); !sig.singleTapConfirmed {
		t.Error("not confirmed at the double-tap timeout")
	}
	if sig := d.tick(1); sig.singleTapConfirmed {
		t.Error("confirmed twice")
	}
}

func TestTapDetectorLongPressDefersConfirm(t *testing.T) {
	var d tapDetector
	d.onEvent(evt(ActionDown, 0, 0, ptr(1, 100, 100)))
	if sig := d.tick(0.5); sig.singleTapConfirmed {
		t.Fatal("confirmed while the pointer is still down")
	}
	sig := d.onEvent(evt(ActionUp, 0.6, 0, ptr(1, 100, 100)))
	if !sig.singleTapUp || !sig.singleTapConfirmed {
		t.Errorf("up after deferred confirm = %+v, want up and confirmed", sig)
	}
}

func TestTapDetectorDragIsNotATap(t *testing.T) {
	var d tapDetector
	d.onEvent(evt(ActionDown, 0, 0, ptr(1, 100, 100)))
	d.onEvent(evt(ActionMove, 0.02, 0, ptr(1, 130, 100)))
	sig := d.onEvent(evt(ActionUp, 0.04, 0, ptr(1, 130, 100)))
	if sig.singleTapUp {
		t.Error("drag reported singleTapUp")
	}
	if sig := d.tick(1); sig.singleTapConfirmed {
		t.Error("drag confirmed a single tap")
	}
}

func TestTapDetectorDoubleTap(t *testing.T) {
	tests := []struct {
		name       string
		secondDown float64
		secondX    float64
		want       bool
	}{
		{"in time", 0.15, 100, true},
		{"nearby", 0.15, 160, true},
		{"too slow", 0.5, 100, false},
		{"too fast", 0.06, 100, false},
		{"too far", 0.15, 250, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d tapDetector
			d.onEvent(evt(ActionDown, 0, 0, ptr(1, 100, 100)))
			d.onEvent(evt(ActionUp, 0.05, 0, ptr(1, 100, 100)))
			d.tick(tt.secondDown)
			down := d.onEvent(evt(ActionDown, tt.secondDown, 0, ptr(1, tt.secondX, 100)))
			up := d.onEvent(evt(ActionUp, tt.secondDown+0.05, 0, ptr(1, tt.secondX, 100)))
			if down.doubleTapEvent != tt.want || up.doubleTapUp != tt.want {
				t.Errorf("down=%+v up=%+v, want double tap %v", down, up, tt.want)
			}
		})
	}
}

func TestTapDetectorSecondPointerCancels(t *testing.T) {
	var d tapDetector
	d.onEvent(evt(ActionDown, 0, 0, ptr(1, 100, 100)))
	d.onEvent(evt(ActionPointerDown, 0.01, 1, ptr(1, 100, 100), ptr(2, 200, 100)))
	d.onEvent(evt(ActionPointerUp, 0.02, 1, ptr(1, 100, 100), ptr(2, 200, 100)))
	sig := d.onEvent(evt(ActionUp, 0.03, 0, ptr(1, 100, 100)))
	if sig.singleTapUp {
		t.Error("multi-pointer sequence reported singleTapUp")
	}
}

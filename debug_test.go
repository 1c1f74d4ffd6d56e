package zoomage

import "testing"

func TestNames(t *testing.T) {
	if got := ActionPointerUp.String(); got != "pointer-up" {
		t.Errorf("ActionPointerUp = %q", got)
	}
	if got := PointerAction(99).String(); got != "unknown" {
		t.Errorf("PointerAction(99) = %q", got)
	}
	if got := EventDoubleTapZoom.String(); got != "double-tap-zoom" {
		t.Errorf("EventDoubleTapZoom = %q", got)
	}
	if got := TransformEventType(99).String(); got != "unknown" {
		t.Errorf("TransformEventType(99) = %q", got)
	}
}

func TestDebugModeLogsWithoutSink(t *testing.T) {
	v := newTestView(t, DefaultConfig())
	v.SetDebugMode(true)
	doubleTapAt(v, 0, 500, 500)
	v.Update(0.2)
	assertNear(t, "zoom", v.CurrentScaleFactor(), 2)
}

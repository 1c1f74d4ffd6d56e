package zoomage

import (
	"errors"
	"testing"
)

const testFrame float32 = 1.0 / 60

func newTestGallery(t *testing.T, pages int) *Gallery {
	t.Helper()
	g, err := NewGallery(1000, 1000, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < pages; i++ {
		if _, err := g.addPage(nil, 2000, 1000); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// drain steps the gallery until the injected input is consumed, then runs
// extra frames so animations finish.
func drain(g *Gallery, extra int) {
	for g.input.Pending() > 0 {
		g.step(testFrame)
	}
	for i := 0; i < extra; i++ {
		g.step(testFrame)
	}
}

func TestNewGalleryInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxScale = 0
	if _, err := NewGallery(100, 100, cfg); !errors.Is(err, ErrInvalidScaleRange) {
		t.Errorf("err = %v, want ErrInvalidScaleRange", err)
	}
}

func TestGalleryPages(t *testing.T) {
	g := newTestGallery(t, 0)
	if g.CurrentView() != nil {
		t.Error("empty gallery returned a current view")
	}
	g.step(testFrame)

	g = newTestGallery(t, 3)
	if len(g.Pages()) != 3 || g.Current() != 0 {
		t.Fatalf("pages=%d current=%d", len(g.Pages()), g.Current())
	}
	v := g.CurrentView()
	assertMatrix(t, "page fit", v.Matrix(), fitMatrix)
	if v.parent != g.Pager() {
		t.Error("page view is not wired to the gallery pager")
	}
	if w, h := g.Layout(10, 10); w != 1000 || h != 1000 {
		t.Errorf("Layout = %d,%d, want 1000,1000", w, h)
	}
}

func TestGallerySwipe(t *testing.T) {
	g := newTestGallery(t, 2)

	g.input.InjectDrag(800, 500, 100, 500, 10)
	drain(g, 0)
	if g.Current() != 1 {
		t.Fatalf("Current = %d after swipe left, want 1", g.Current())
	}
	drain(g, 30)
	if g.offset != 0 {
		t.Errorf("offset = %v after slide, want 0", g.offset)
	}

	g.input.InjectDrag(800, 500, 100, 500, 10)
	drain(g, 30)
	if g.Current() != 1 {
		t.Errorf("Current = %d, swipe past the last page should stay", g.Current())
	}

	g.input.InjectDrag(100, 500, 800, 500, 10)
	drain(g, 30)
	if g.Current() != 0 {
		t.Errorf("Current = %d after swipe right, want 0", g.Current())
	}
}

func TestGalleryShortSwipeStays(t *testing.T) {
	g := newTestGallery(t, 2)
	g.input.InjectDrag(500, 500, 350, 500, 5)
	drain(g, 30)
	if g.Current() != 0 {
		t.Errorf("Current = %d after a short swipe, want 0", g.Current())
	}
}

func TestGalleryZoomedPagePans(t *testing.T) {
	g := newTestGallery(t, 2)

	g.input.InjectDoubleTap(500, 500)
	drain(g, 30)
	v := g.CurrentView()
	assertNear(t, "zoom", v.CurrentScaleFactor(), 2)

	g.input.InjectDrag(500, 500, 400, 500, 3)
	drain(g, 30)
	if g.Current() != 0 {
		t.Fatalf("Current = %d, zoomed page should keep the drag", g.Current())
	}
	assertNear(t, "panned tx", v.Matrix().TransX(), -600)
}

func TestGalleryZoomedPageNeverPages(t *testing.T) {
	g := newTestGallery(t, 2)
	g.input.InjectDoubleTap(500, 500)
	drain(g, 30)

	// Pan to the right edge, then keep swiping past it.
	g.input.InjectDrag(900, 500, 100, 500, 10)
	drain(g, 30)
	g.input.InjectDrag(800, 500, 100, 500, 10)
	drain(g, 30)

	if g.Current() != 0 {
		t.Errorf("Current = %d, zoomed page should keep every drag", g.Current())
	}
	if g.Pager().Intercepting() {
		t.Error("pager left intercepting")
	}
}

func TestGalleryPageChangeResetsPrevious(t *testing.T) {
	g := newTestGallery(t, 2)
	first := g.CurrentView()
	first.HandlePointerEvent(evt(ActionDown, 0, 0, ptr(1, 500, 500)))
	first.HandlePointerEvent(evt(ActionCancel, 0.01, 0, ptr(1, 500, 500)))
	first.SetMatrix(Matrix{1, 0, 0, 1, -500, 0})

	g.offset = -600
	g.settlePage()
	if g.Current() != 1 {
		t.Fatalf("Current = %d, want 1", g.Current())
	}
	if first.Matrix() != fitMatrix {
		t.Errorf("previous page matrix = %v, want reset to %v", first.Matrix(), fitMatrix)
	}
	assertNear(t, "offset", g.offset, 400)
}

func TestGallerySwipesCroppedHomePage(t *testing.T) {
	g := newTestGallery(t, 2)
	g.CurrentView().SetMatrix(cropMatrix)

	g.input.InjectDrag(800, 500, 100, 500, 10)
	drain(g, 30)
	if g.Current() != 1 {
		t.Errorf("Current = %d, want 1", g.Current())
	}
}

package zoomage

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// pageSlideDuration is how long, in seconds, a page takes to slide into
	// place after a swipe.
	pageSlideDuration float32 = 0.25
	// pageSwitchFraction is the fraction of the width a swipe must cover to
	// switch pages.
	pageSwitchFraction = 0.25
)

// Page is one zoomable image in a Gallery.
type Page struct {
	View  *ZoomView
	Image *ebiten.Image
}

// Gallery is a horizontally paging set of zoomable images. It implements
// ebiten.Game: pointer input is routed through its Pager, which decides per
// sequence whether the current page's ZoomView or the gallery itself owns
// the drag.
type Gallery struct {
	// ClearColor fills the screen before pages are drawn.
	ClearColor color.Color
	// ShowStats draws FPS, TPS, page and zoom in the top-left corner.
	ShowStats bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cfg    Config
	width  int
	height int

	pages   []Page
	current int
	pager   *Pager
	input   *TouchInput

	paging bool
	downX  float64
	lastX  float64
	offset float64
	slide  *gween.Tween

	testRunner      *TestRunner
	screenshotQueue []string
	debug           bool
}

// NewGallery creates an empty gallery with a width×height viewport. Every
// page gets its own ZoomView built from cfg.
func NewGallery(width, height int, cfg Config) (*Gallery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Gallery{
		ClearColor:    color.Black,
		ScreenshotDir: "screenshots",
		cfg:           cfg,
		width:         width,
		height:        height,
		pager:         NewPager(),
		input:         NewTouchInput(),
	}, nil
}

// AddImage appends a page displaying img, fitted and centered.
func (g *Gallery) AddImage(img *ebiten.Image) (*ZoomView, error) {
	b := img.Bounds()
	return g.addPage(img, float64(b.Dx()), float64(b.Dy()))
}

func (g *Gallery) addPage(img *ebiten.Image, w, h float64) (*ZoomView, error) {
	v, err := NewZoomView(g.cfg)
	if err != nil {
		return nil, fmt.Errorf("add page %d: %w", len(g.pages), err)
	}
	v.SetViewport(float64(g.width), float64(g.height))
	v.SetImageSize(w, h)
	v.FitCenter()
	v.SetParent(g.pager)
	v.SetDebugMode(g.debug)
	g.pages = append(g.pages, Page{View: v, Image: img})
	return v, nil
}

// Pages returns the gallery's pages. The returned slice MUST NOT be mutated.
func (g *Gallery) Pages() []Page {
	return g.pages
}

// Current returns the index of the page in view.
func (g *Gallery) Current() int {
	return g.current
}

// CurrentView returns the ZoomView of the page in view, or nil when the
// gallery is empty.
func (g *Gallery) CurrentView() *ZoomView {
	if g.current < 0 || g.current >= len(g.pages) {
		return nil
	}
	return g.pages[g.current].View
}

// Pager returns the gallery's scroll arbiter.
func (g *Gallery) Pager() *Pager {
	return g.pager
}

// Input returns the gallery's input source, for injecting synthetic events.
func (g *Gallery) Input() *TouchInput {
	return g.input
}

// SetDebugMode enables debug logging on the gallery and every page's view.
func (g *Gallery) SetDebugMode(enabled bool) {
	g.debug = enabled
	for _, p := range g.pages {
		p.View.SetDebugMode(enabled)
	}
}

// Update samples input, routes events and advances animations.
func (g *Gallery) Update() error {
	g.step(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// step runs one frame of length dt seconds.
func (g *Gallery) step(dt float32) {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	for _, ev := range g.input.Poll(dt) {
		g.dispatch(ev)
	}
	for _, p := range g.pages {
		p.View.Update(dt)
	}
	if g.slide != nil {
		val, done := g.slide.Update(dt)
		g.offset = float64(val)
		if done {
			g.offset = 0
			g.slide = nil
		}
	}
}

// dispatch routes one event to the pager or the current page.
func (g *Gallery) dispatch(ev PointerEvent) {
	view := g.CurrentView()
	if view == nil || len(ev.Pointers) == 0 {
		return
	}
	if ev.Action == ActionDown {
		g.downX = ev.Pointers[0].X
	}
	if g.pager.ShouldIntercept(ev, view) {
		if !g.paging {
			g.paging = true
			g.slide = nil
			g.lastX = g.downX
			cancel := ev
			cancel.Action = ActionCancel
			view.HandlePointerEvent(cancel)
		}
		g.dragPage(ev)
		return
	}
	view.HandlePointerEvent(ev)
}

// dragPage moves the pages with the first pointer and settles on release.
func (g *Gallery) dragPage(ev PointerEvent) {
	x := ev.Pointers[0].X
	g.offset += x - g.lastX
	g.lastX = x
	if ev.Action == ActionUp || ev.Action == ActionCancel {
		g.paging = false
		g.settlePage()
	}
}

// settlePage switches page if the swipe went far enough, then slides the
// remaining offset back to zero.
func (g *Gallery) settlePage() {
	threshold := float64(g.width) * pageSwitchFraction
	prev := g.current
	if g.offset < -threshold && g.current < len(g.pages)-1 {
		g.current++
		g.offset += float64(g.width)
	} else if g.offset > threshold && g.current > 0 {
		g.current--
		g.offset -= float64(g.width)
	}
	if prev != g.current {
		g.pages[prev].View.Reset(false)
		if g.debug {
			g.pages[prev].View.debugf("page %d -> %d", prev, g.current)
		}
	}
	g.slide = gween.New(float32(g.offset), 0, pageSlideDuration, ease.OutQuad)
}

// Draw draws the current page and any neighbor exposed by a swipe.
func (g *Gallery) Draw(screen *ebiten.Image) {
	if g.ClearColor != nil {
		screen.Fill(g.ClearColor)
	}
	for i := g.current - 1; i <= g.current+1; i++ {
		if i < 0 || i >= len(g.pages) {
			continue
		}
		x := float64(i-g.current)*float64(g.width) + g.offset
		if x <= -float64(g.width) || x >= float64(g.width) {
			continue
		}
		p := g.pages[i]
		p.View.DrawImage(screen, p.Image, x, 0)
	}
	if g.ShowStats {
		g.drawStats(screen)
	}
	g.flushScreenshots(screen)
}

// drawStats prints frame rate and zoom state in the top-left corner.
func (g *Gallery) drawStats(screen *ebiten.Image) {
	zoom := 1.0
	var ix, iy float64
	if v := g.CurrentView(); v != nil {
		zoom = v.CurrentScaleFactor()
		cx, cy := ebiten.CursorPosition()
		ix, iy = v.ViewToImage(float64(cx), float64(cy))
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPage: %d/%d\nZoom: %.2fx\nImage: %.0f,%.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.current+1, len(g.pages), zoom, ix, iy))
}

// Layout reports the gallery's fixed logical size.
func (g *Gallery) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

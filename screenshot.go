package zoomage

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next drawn frame to be saved under ScreenshotDir.
// The file name records the page and zoom shown, so a scripted run leaves
// a readable trail: <timestamp>_<label>_p<page>_z<zoom>.png.
func (g *Gallery) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots saves the frame once per queued label. Errors are logged
// and dropped; a failed capture must not stop the gallery.
func (g *Gallery) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	labels := g.screenshotQueue
	g.screenshotQueue = g.screenshotQueue[:0]

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[zoomage] screenshot: %v\n", err)
		return
	}
	frame := unpremultiply(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(g.ScreenshotDir, g.screenshotName(stamp, label))
		if err := writePNG(path, frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[zoomage] screenshot: %v\n", err)
		}
	}
}

// screenshotName builds the file name for one capture of the current page.
func (g *Gallery) screenshotName(stamp, label string) string {
	zoom := 1.0
	if v := g.CurrentView(); v != nil {
		zoom = v.CurrentScaleFactor()
	}
	return fmt.Sprintf("%s_%s_p%d_z%.2f.png", stamp, sanitizeLabel(label), g.current, zoom)
}

// unpremultiply reads the screen's premultiplied RGBA pixels into a
// straight-alpha image, the form PNG stores.
func unpremultiply(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 0xff {
			continue
		}
		for c := i; c < i+3; c++ {
			img.Pix[c] = uint8(min(int(img.Pix[c])*0xff/a, 0xff))
		}
	}
	return img
}

// sanitizeLabel makes a script label safe to use in a file name.
func sanitizeLabel(label string) string {
	if label == "" {
		return "shot"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, label)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

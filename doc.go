// Package zoomage provides pinch-zoom and pan for a single image inside a
// fixed viewport, plus the scroll arbitration a horizontal pager needs to
// share drags with its zoomable children. It runs on [Ebitengine].
//
// # Quick start
//
// The simplest way to get started is [Gallery], which implements
// [ebiten.Game] and pages between zoomable images:
//
//	g, _ := zoomage.NewGallery(800, 600, zoomage.DefaultConfig())
//	g.AddImage(img)
//	ebiten.RunGame(g)
//
// For full control, own a [ZoomView] yourself. Feed it pointer events, tick
// it once per frame and draw with its matrix:
//
//	v, _ := zoomage.NewZoomView(zoomage.DefaultConfig())
//	v.SetViewport(800, 600)
//	v.SetImageSize(w, h)
//	v.FitCenter()
//
//	for _, ev := range input.Poll(dt) {
//		v.HandlePointerEvent(ev)
//	}
//	v.Update(dt)
//	v.DrawImage(screen, img, 0, 0)
//
// # Gestures
//
// One finger pans, two fingers pinch about their focal point, and a double
// tap toggles between the initial transform and a zoom about the tap. The
// scale stays within [Config.MinScale, Config.MaxScale] times the scale
// captured on the first gesture. Releasing at or below the initial scale
// animates back home; releasing above it slides each axis back inside the
// viewport edges when [Config.AutoCenter] is set. Every animation is linear
// over 200ms (via [gween]) and ends exactly on its target.
//
// # Paging
//
// [Pager] decides per pointer sequence whether a horizontal drag belongs to
// the page container or to the zoomed child. A [ZoomView] reports to its
// parent after every event and answers [ZoomView.CanPanFurther] so the pager
// only swipes once the image cannot pan any further.
//
// Transform events can be bridged into an ECS world with the Donburi
// adapter in zoomage/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package zoomage

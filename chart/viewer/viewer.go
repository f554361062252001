//go:build !noviewer && cgo

package viewer

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sartorproj/gotitration/chart"
)

// advanceKeys move to the next page.
var advanceKeys = []ebiten.Key{
	ebiten.KeyEscape,
	ebiten.KeyQ,
	ebiten.KeyEnter,
	ebiten.KeySpace,
}

// Show opens a window and displays pages one after another. Each page stays
// up until it is dismissed with Escape, Q, Enter or Space, or by closing the
// window; Show returns after the last one. Cancelling ctx closes the window
// and returns ctx.Err().
func Show(ctx context.Context, pages []chart.Page) error {
	if len(pages) == 0 {
		return nil
	}

	w := &window{ctx: ctx, pages: pages, pager: pager{n: len(pages)}}
	w.showCurrent()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return ctx.Err()
}

type window struct {
	ctx   context.Context
	pages []chart.Page
	pager pager
	img   *ebiten.Image
}

func (w *window) showCurrent() {
	if w.img != nil {
		w.img.Deallocate()
		w.img = nil
	}
	page := w.pages[w.pager.current]
	b := page.Image.Bounds()
	ebiten.SetWindowTitle(page.Title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
}

func (w *window) dismissed() bool {
	if ebiten.IsWindowBeingClosed() {
		return true
	}
	for _, k := range advanceKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (w *window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if !w.dismissed() {
		return nil
	}
	if !w.pager.next() {
		return ebiten.Termination
	}
	w.showCurrent()
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.pages[w.pager.current].Image)
	}
	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.pages[w.pager.current].Image.Bounds()
	return b.Dx(), b.Dy()
}

//go:build !tinygo

package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/edp1096/toy-coulomb/pkg/plot"
	"github.com/edp1096/toy-coulomb/pkg/table"
)

// Show opens a window displaying img and blocks until it is closed.
// Must be called from the main goroutine, and at most once per process.
func Show(img *image.RGBA, title string) error {
	b := img.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetTPS(30)

	err := ebiten.RunGame(&plotWindow{src: img})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Graph renders force vs. opts.XColumn and shows it.
func Graph(t *table.Table, opts plot.Options) error {
	img, err := plot.Render(t, opts)
	if err != nil {
		return err
	}
	return Show(img, opts.Caption())
}

type plotWindow struct {
	src *image.RGBA
	img *ebiten.Image
}

func (w *plotWindow) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *plotWindow) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

func (w *plotWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.src.Bounds()
	return b.Dx(), b.Dy()
}

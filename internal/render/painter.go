//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a w*h slab into a single image and draws it scaled.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	buf    []byte
	colors Colors
}

// NewGridPainter allocates a painter for a slab of size w*h.
func NewGridPainter(w, h int, colors Colors) *GridPainter {
	return &GridPainter{
		w:      w,
		h:      h,
		img:    ebiten.NewImage(w, h),
		buf:    make([]byte, 4*w*h),
		colors: colors,
	}
}

// Blit uploads cells and draws them onto dst. Slabs of the wrong size are
// ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	gp.colors.Fill(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

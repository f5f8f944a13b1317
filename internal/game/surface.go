package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the drawing target the renderer paints on. Coordinates are in
// the surface's own units (pixels for a window, character cells for a
// terminal) with the origin at the top left.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	DrawLine(p1, p2 Vec2, width float64, c color.Color)
	DrawPoint(p Vec2, radius float64, c color.Color)
}

// EbitenSurface adapts an *ebiten.Image to Surface using the vector package.
type EbitenSurface struct {
	img *ebiten.Image
}

var _ Surface = (*EbitenSurface)(nil)

// NewEbitenSurface wraps img.
func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{img: img}
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear() { s.img.Clear() }

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) DrawLine(p1, p2 Vec2, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), float32(width), c, true)
}

func (s *EbitenSurface) DrawPoint(p Vec2, radius float64, c color.Color) {
	vector.FillCircle(s.img, float32(p.X), float32(p.Y), float32(radius), c, true)
}

// Package term runs the maze in a terminal through tcell. One character
// cell is one surface unit.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Maze-Caster/internal/game"
)

// Surface paints game frames onto a tcell screen using cell backgrounds.
type Surface struct {
	screen tcell.Screen
}

var _ game.Surface = (*Surface)(nil)

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) Size() (int, int) { return s.screen.Size() }

func (s *Surface) Clear() { s.screen.Clear() }

// FillRect paints every cell the rectangle touches.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	style, ok := cellStyle(c)
	if !ok {
		return
	}
	sw, sh := s.screen.Size()
	x0 := max(int(math.Floor(x)), 0)
	y0 := max(int(math.Floor(y)), 0)
	x1 := min(int(math.Ceil(x+w)), sw)
	y1 := min(int(math.Ceil(y+h)), sh)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawLine walks the cells between p1 and p2 (Bresenham). Width is ignored.
func (s *Surface) DrawLine(p1, p2 game.Vec2, _ float64, c color.Color) {
	style, ok := cellStyle(c)
	if !ok {
		return
	}
	x0, y0 := int(math.Floor(p1.X)), int(math.Floor(p1.Y))
	x1, y1 := int(math.Floor(p2.X)), int(math.Floor(p2.Y))
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.set(x0, y0, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawPoint fills the cell under p, plus any cells within radius.
func (s *Surface) DrawPoint(p game.Vec2, radius float64, c color.Color) {
	style, ok := cellStyle(c)
	if !ok {
		return
	}
	col, row := int(math.Floor(p.X)), int(math.Floor(p.Y))
	r := int(math.Floor(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				s.set(col+dx, row+dy, style)
			}
		}
	}
}

// Text writes str starting at (x, y), clipped to the screen.
func (s *Surface) Text(x, y int, str string, fg, bg color.Color) {
	style := tcell.StyleDefault.Foreground(toColor(fg)).Background(toColor(bg))
	sw, _ := s.screen.Size()
	for _, r := range str {
		if x >= sw {
			return
		}
		if x >= 0 {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (s *Surface) set(col, row int, style tcell.Style) {
	sw, sh := s.screen.Size()
	if col < 0 || row < 0 || col >= sw || row >= sh {
		return
	}
	s.screen.SetContent(col, row, ' ', nil, style)
}

// cellStyle maps c to a background style. Fully transparent colours draw
// nothing; partial alpha is treated as opaque.
func cellStyle(c color.Color) (tcell.Style, bool) {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return tcell.StyleDefault, false
	}
	return tcell.StyleDefault.Background(toColor(c)), true
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

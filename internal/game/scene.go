package game

import (
	"fmt"
	"math"
	"strings"
)

// Cell is the occupancy state of one grid square.
type Cell uint8

const (
	CellEmpty Cell = iota // open floor
	CellWall              // blocks movement and rays
	CellGoal              // maze exit on the boundary; walkable
)

// glyph returns the ASCII form used by Scene.String and ParseScene.
func (c Cell) glyph() byte {
	switch c {
	case CellWall:
		return '#'
	case CellGoal:
		return 'G'
	default:
		return '.'
	}
}

// Scene is the occupancy grid a maze is played on. Cells are written only
// while the scene is built (generator or ParseScene); afterwards the scene
// is shared read-only by the player, the raycaster and the renderer.
type Scene struct {
	Width  int
	Height int
	cells  []Cell // row-major: index = row*Width + col

	// Start is the player spawn point, usually a cell centre.
	Start Vec2
	// Facing is the spawn heading in radians.
	Facing float64
}

// NewScene creates a width x height scene with every cell set to fill.
func NewScene(width, height int, fill Cell) *Scene {
	cells := make([]Cell, width*height)
	if fill != CellEmpty {
		for i := range cells {
			cells[i] = fill
		}
	}
	return &Scene{Width: width, Height: height, cells: cells}
}

// InBounds returns true if (col, row) is inside the grid.
func (s *Scene) InBounds(col, row int) bool {
	return col >= 0 && col < s.Width && row >= 0 && row < s.Height
}

// At returns the cell at (col, row). Out-of-bounds reads report CellWall.
func (s *Scene) At(col, row int) Cell {
	if !s.InBounds(col, row) {
		return CellWall
	}
	return s.cells[row*s.Width+col]
}

// IsWall returns true for wall cells and anything outside the grid.
func (s *Scene) IsWall(col, row int) bool {
	return s.At(col, row) == CellWall
}

// IsOpen returns true if (col, row) is in bounds and not a wall.
func (s *Scene) IsOpen(col, row int) bool {
	return s.InBounds(col, row) && s.cells[row*s.Width+col] != CellWall
}

// CellOf floors a continuous position to its cell index.
func CellOf(p Vec2) (col, row int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Goal returns the first goal cell in row-major order.
func (s *Scene) Goal() (col, row int, ok bool) {
	for i, c := range s.cells {
		if c == CellGoal {
			return i % s.Width, i / s.Width, true
		}
	}
	return 0, 0, false
}

func (s *Scene) set(col, row int, c Cell) {
	if !s.InBounds(col, row) {
		return
	}
	s.cells[row*s.Width+col] = c
}

// String renders the scene as ASCII rows: '#' wall, '.' empty, 'G' goal and
// 'S' for the cell containing Start.
func (s *Scene) String() string {
	sc, sr := CellOf(s.Start)
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			if col == sc && row == sr && s.At(col, row) != CellWall {
				sb.WriteByte('S')
				continue
			}
			sb.WriteByte(s.At(col, row).glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseScene builds a scene from ASCII rows using the glyphs of String.
// 'S' marks an empty cell whose centre becomes Start; without one, Start is
// the centre of the first empty cell.
func ParseScene(rows ...string) (*Scene, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse scene: no rows")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("parse scene: empty first row")
	}
	s := NewScene(w, len(rows), CellEmpty)
	haveStart := false
	firstOpen := -1
	for row, line := range rows {
		if len(line) != w {
			return nil, fmt.Errorf("parse scene: row %d has width %d, want %d", row, len(line), w)
		}
		for col := 0; col < w; col++ {
			switch line[col] {
			case '#':
				s.set(col, row, CellWall)
			case 'G':
				s.set(col, row, CellGoal)
			case '.':
				if firstOpen < 0 {
					firstOpen = row*w + col
				}
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("parse scene: second start at (%d,%d)", col, row)
				}
				haveStart = true
				s.Start = Vec2{float64(col) + 0.5, float64(row) + 0.5}
			default:
				return nil, fmt.Errorf("parse scene: unknown glyph %q at (%d,%d)", line[col], col, row)
			}
		}
	}
	if !haveStart && firstOpen >= 0 {
		s.Start = Vec2{float64(firstOpen%w) + 0.5, float64(firstOpen/w) + 0.5}
	}
	return s, nil
}

// MustParseScene is ParseScene for fixed literals; it panics on error.
func MustParseScene(rows ...string) *Scene {
	s, err := ParseScene(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

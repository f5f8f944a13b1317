package game

import "image/color"

const (
	defaultMinimapZoom = 8.0 // surface units per cell
	minGridZoom        = 4.0 // below this the grid would cover the cells
)

var (
	minimapBackground = color.RGBA{R: 8, G: 10, B: 12, A: 220}
	minimapWall       = color.RGBA{R: 120, G: 120, B: 128, A: 255}
	minimapGoal       = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	minimapGrid       = color.RGBA{R: 50, G: 56, B: 64, A: 160}
	minimapPlayer     = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	minimapFOV        = color.RGBA{R: 230, G: 200, B: 60, A: 200}
)

// DrawMinimap draws a top-down view of s in the top-left corner of dst:
// walls, the goal, grid lines (when zoom allows), the player and both field-of-view edge rays.
// zoom is surface units per cell.
func (r *Renderer) DrawMinimap(dst Surface, p Player, s *Scene, zoom float64) {
	if zoom <= 0 {
		zoom = defaultMinimapZoom
	}
	mw, mh := float64(s.Width)*zoom, float64(s.Height)*zoom
	dst.FillRect(0, 0, mw, mh, minimapBackground)

	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			switch s.At(col, row) {
			case CellWall:
				dst.FillRect(float64(col)*zoom, float64(row)*zoom, zoom, zoom, minimapWall)
			case CellGoal:
				dst.FillRect(float64(col)*zoom, float64(row)*zoom, zoom, zoom, minimapGoal)
			}
		}
	}
	if zoom >= minGridZoom {
		for col := 0; col <= s.Width; col++ {
			x := float64(col) * zoom
			dst.DrawLine(Vec2{x, 0}, Vec2{x, mh}, 1, minimapGrid)
		}
		for row := 0; row <= s.Height; row++ {
			y := float64(row) * zoom
			dst.DrawLine(Vec2{0, y}, Vec2{mw, y}, 1, minimapGrid)
		}
	}

	pos := p.Position.Scale(zoom)
	left, right := p.FOVRange(r.Near, r.FOV)
	leftHit := Cast(p.Position, left, s).Scale(zoom)
	rightHit := Cast(p.Position, right, s).Scale(zoom)
	dst.DrawLine(pos, leftHit, 1, minimapFOV)
	dst.DrawLine(pos, rightHit, 1, minimapFOV)
	dst.DrawLine(left.Scale(zoom), right.Scale(zoom), 1, minimapFOV)
	dst.DrawPoint(pos, zoom/4, minimapPlayer)
}

package game

import "math"

// castEps nudges points off the grid line they sit on, in the direction of
// travel, so snapping and cell lookup never stall on the current line.
const castEps = 1e-6

// RayHit is the result of walking a ray through a scene.
type RayHit struct {
	Point    Vec2 // last sample; callers take distance from this
	Col, Row int  // cell the ray was entering when it stopped
	InBounds bool // false when the ray left the grid
	Steps    int  // grid-line crossings taken
}

// Cast walks from origin toward target and returns the hit point.
func Cast(origin, target Vec2, s *Scene) Vec2 {
	return CastRay(origin, target, s).Point
}

// CastRay walks the ray origin→target one grid-line crossing at a time until
// the cell being entered is a wall or outside the grid. A zero-length ray
// returns immediately. Iterations are capped by the grid perimeter so float
// edge cases can never spin forever.
func CastRay(origin, target Vec2, s *Scene) RayHit {
	p1, p2 := origin, target
	limit := maxCastSteps(s)
	hit := RayHit{Point: p2}
	for step := 0; step < limit; step++ {
		hit.Point = p2
		hit.Steps = step
		if p1.Equals(p2) {
			hit.Col, hit.Row = CellOf(p2)
			hit.InBounds = s.InBounds(hit.Col, hit.Row)
			return hit
		}
		col, row := cellHit(p1, p2)
		hit.Col, hit.Row = col, row
		if !s.InBounds(col, row) {
			hit.InBounds = false
			return hit
		}
		if s.IsWall(col, row) {
			hit.InBounds = true
			return hit
		}
		p1, p2 = p2, rayStep(p1, p2)
	}
	hit.InBounds = s.InBounds(hit.Col, hit.Row)
	return hit
}

// maxCastSteps bounds a walk: a straight ray crosses each vertical and
// horizontal grid line at most once.
func maxCastSteps(s *Scene) int {
	return 2*(s.Width+s.Height) + 8
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// snap moves x to the next integer grid line in the direction of dx.
func snap(x, dx float64) float64 {
	switch {
	case dx > 0:
		return math.Ceil(x + castEps)
	case dx < 0:
		return math.Floor(x - castEps)
	default:
		return x
	}
}

// cellHit returns the cell p2 is entering when travelling from p1.
func cellHit(p1, p2 Vec2) (col, row int) {
	d := p2.Sub(p1)
	return int(math.Floor(p2.X + sign(d.X)*castEps)),
		int(math.Floor(p2.Y + sign(d.Y)*castEps))
}

// rayStep extends the line p1→p2 past p2 to the nearest vertical or
// horizontal grid line.
func rayStep(p1, p2 Vec2) Vec2 {
	d := p2.Sub(p1)
	if d.X == 0 {
		return Vec2{X: p2.X, Y: snap(p2.Y, d.Y)}
	}

	k := d.Y / d.X
	c := p1.Y - k*p1.X

	x3 := snap(p2.X, d.X)
	next := Vec2{X: x3, Y: x3*k + c}

	if k != 0 {
		y3 := snap(p2.Y, d.Y)
		alt := Vec2{X: (y3 - c) / k, Y: y3}
		if p2.DistanceTo(alt) < p2.DistanceTo(next) {
			next = alt
		}
	}
	return next
}

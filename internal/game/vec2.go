package game

import "math"

// Vec2 is an immutable 2D point/vector in grid units.
// Every method returns a new value; operands are never modified.
type Vec2 struct {
	X, Y float64
}

// Vec2FromAngle returns the unit vector (cos a, sin a).
func Vec2FromAngle(a float64) Vec2 {
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

func (v Vec2) Scale(n float64) Vec2 { return Vec2{v.X * n, v.Y * n} }

// Rot90 rotates a quarter turn: (x, y) -> (-y, x).
func (v Vec2) Rot90() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Dot(u Vec2) float64 { return v.X*u.X + v.Y*u.Y }

func (v Vec2) Magnitude() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

func (v Vec2) DistanceTo(u Vec2) float64 { return u.Sub(v).Magnitude() }

// Normalize returns the unit vector in v's direction, or the zero vector
// when v has zero magnitude.
func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// Equals is exact component equality.
func (v Vec2) Equals(u Vec2) bool { return v.X == u.X && v.Y == u.Y }

// Lerp interpolates from v (t=0) to u (t=1). Both endpoints are returned
// exactly for t=0 and t=1.
func (v Vec2) Lerp(u Vec2, t float64) Vec2 {
	return v.Scale(1 - t).Add(u.Scale(t))
}

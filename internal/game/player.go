package game

import "math"

const (
	// Default pose rates, per tick.
	defaultMoveSpeed = 0.05           // cells per tick
	defaultTurnSpeed = math.Pi / 90.0 // radians per tick
)

// Intent is the set of movement keys held during one tick.
type Intent struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
}

// Player is the camera pose walking the maze. It is a value: Update returns
// a new Player and never modifies the receiver.
type Player struct {
	Position  Vec2
	Direction float64 // radians, 0 = +x, pi/2 = +y (down the grid)
	MoveSpeed float64 // cells per tick
	TurnSpeed float64 // radians per tick
}

// NewPlayer spawns a player at the scene's start, facing its spawn heading.
// Non-positive rates fall back to the defaults.
func NewPlayer(s *Scene, moveSpeed, turnSpeed float64) Player {
	if moveSpeed <= 0 {
		moveSpeed = defaultMoveSpeed
	}
	if turnSpeed <= 0 {
		turnSpeed = defaultTurnSpeed
	}
	return Player{
		Position:  s.Start,
		Direction: s.Facing,
		MoveSpeed: moveSpeed,
		TurnSpeed: turnSpeed,
	}
}

// Update advances the pose by one tick of input. Movement contributions are
// summed without normalisation, so forward+strafe moves faster than either
// alone. If the candidate position floors to a cell that is out of bounds or
// a wall, the position is kept and only the rotation is applied.
func (p Player) Update(in Intent, s *Scene) Player {
	var step Vec2
	if in.Forward {
		step = step.Add(Vec2FromAngle(p.Direction).Scale(p.MoveSpeed))
	}
	if in.Back {
		step = step.Add(Vec2FromAngle(p.Direction + math.Pi).Scale(p.MoveSpeed))
	}
	if in.StrafeLeft {
		step = step.Add(Vec2FromAngle(p.Direction - math.Pi/2).Scale(p.MoveSpeed))
	}
	if in.StrafeRight {
		step = step.Add(Vec2FromAngle(p.Direction + math.Pi/2).Scale(p.MoveSpeed))
	}

	dir := p.Direction
	if in.TurnLeft {
		dir -= p.TurnSpeed
	}
	if in.TurnRight {
		dir += p.TurnSpeed
	}

	next := p
	next.Direction = dir
	candidate := p.Position.Add(step)
	if col, row := CellOf(candidate); s.IsOpen(col, row) {
		next.Position = candidate
	}
	return next
}

// Moved reports whether q has a different position from p.
func (p Player) Moved(q Player) bool {
	return !p.Position.Equals(q.Position)
}

// Forward returns the unit view vector.
func (p Player) Forward() Vec2 {
	return Vec2FromAngle(p.Direction)
}

// FOVRange returns the two endpoints of the near plane that bound the field
// of view. near is the near-plane distance and fov the total angle.
func (p Player) FOVRange(near, fov float64) (left, right Vec2) {
	front := p.Position.Add(p.Forward().Scale(near))
	opp := math.Tan(fov/2) * near
	side := front.Sub(p.Position).Normalize().Rot90().Scale(opp)
	return front.Sub(side), front.Add(side)
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

package game

import (
	"math"
	"math/rand"
	"time"
)

// Maze dimensions are clamped to this range before being forced odd.
const (
	MinMazeSize = 5
	MaxMazeSize = 249
)

// mazeCarveOrigin is the first cell opened by the carve.
const mazeCarveOrigin = 1

// frontierWall is a wall cell next to the carved region together with the
// direction to the path cell behind it.
type frontierWall struct {
	x, y   int
	dx, dy int
}

var carveDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ClampMazeSize clamps n to [MinMazeSize, MaxMazeSize] and rounds even
// values up to the next odd one.
func ClampMazeSize(n int) int {
	if n < MinMazeSize {
		n = MinMazeSize
	}
	if n > MaxMazeSize {
		n = MaxMazeSize
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// GenerateMaze carves a perfect maze with randomized Prim's algorithm and
// places a goal on one boundary edge with the start on the opposite side.
// Dimensions are normalised with ClampMazeSize. A nil rng uses a
// time-seeded source.
func GenerateMaze(width, height int, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- maze layout only
	}
	w := ClampMazeSize(width)
	h := ClampMazeSize(height)
	s := NewScene(w, h, CellWall)

	carveMaze(s, rng)
	placeStartAndGoal(s, rng)
	return s
}

// carveMaze grows a spanning tree over the odd-parity cells of s.
func carveMaze(s *Scene, rng *rand.Rand) {
	var frontier []frontierWall

	addWalls := func(cx, cy int) {
		for _, d := range carveDirs {
			wx, wy := cx+d[0], cy+d[1]
			px, py := wx+d[0], wy+d[1]
			if !s.InBounds(wx, wy) || !s.InBounds(px, py) {
				continue
			}
			if s.At(wx, wy) == CellWall && s.At(px, py) == CellWall {
				frontier = append(frontier, frontierWall{x: wx, y: wy, dx: d[0], dy: d[1]})
			}
		}
	}

	s.set(mazeCarveOrigin, mazeCarveOrigin, CellEmpty)
	addWalls(mazeCarveOrigin, mazeCarveOrigin)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		fw := frontier[i]
		// Swap-remove keeps the pick uniform without shifting the slice.
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]

		px, py := fw.x+fw.dx, fw.y+fw.dy
		if s.At(px, py) != CellWall {
			continue
		}
		s.set(fw.x, fw.y, CellEmpty)
		s.set(px, py, CellEmpty)
		addWalls(px, py)
	}
}

// Boundary edges a goal can be placed on.
const (
	edgeTop = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// randomOdd returns a uniformly chosen odd value in [1, n-2]; n is odd.
func randomOdd(rng *rand.Rand, n int) int {
	return 2*rng.Intn((n-1)/2) + 1
}

// placeStartAndGoal opens a goal cell on a random boundary edge and puts the
// start in the interior cell directly across the maze from it.
func placeStartAndGoal(s *Scene, rng *rand.Rand) {
	var gc, gr, sc, sr int
	var facing float64
	switch rng.Intn(4) {
	case edgeTop:
		gc, gr = randomOdd(rng, s.Width), 0
		sc, sr = gc, s.Height-2
		facing = -math.Pi / 2
	case edgeBottom:
		gc, gr = randomOdd(rng, s.Width), s.Height-1
		sc, sr = gc, 1
		facing = math.Pi / 2
	case edgeLeft:
		gc, gr = 0, randomOdd(rng, s.Height)
		sc, sr = s.Width-2, gr
		facing = math.Pi
	default:
		gc, gr = s.Width-1, randomOdd(rng, s.Height)
		sc, sr = 1, gr
		facing = 0
	}
	s.set(gc, gr, CellGoal)
	s.Start = Vec2{float64(sc) + 0.5, float64(sr) + 0.5}
	s.Facing = facing
}

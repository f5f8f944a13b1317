package game

import (
	"github.com/cespare/xxhash/v2"
)

// MazeStats summarises the structure of a scene's open cells.
type MazeStats struct {
	Width, Height int
	OpenCells     int // non-wall cells, goal included
	Reachable     int // open cells 4-connected to the start cell
	DeadEnds      int // open cells with exactly one open neighbour
	Junctions     int // open cells with three or more open neighbours
	GoalCount     int
	Edges         int // 4-adjacent open pairs
	SolutionLen   int // cells on the shortest start→goal path, 0 if none
	Connected     bool
	Acyclic       bool
	Fingerprint   uint64
}

var neighbourDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (s *Scene) openNeighbours(col, row int) int {
	n := 0
	for _, d := range neighbourDirs {
		if s.IsOpen(col+d[0], row+d[1]) {
			n++
		}
	}
	return n
}

// Fingerprint hashes the dimensions and cell grid. Equal layouts hash
// equally regardless of the start position.
func (s *Scene) Fingerprint() uint64 {
	d := xxhash.New()
	var hdr [8]byte
	for i := 0; i < 4; i++ {
		hdr[i] = byte(s.Width >> (8 * i))
		hdr[4+i] = byte(s.Height >> (8 * i))
	}
	_, _ = d.Write(hdr[:])
	buf := make([]byte, len(s.cells))
	for i, c := range s.cells {
		buf[i] = byte(c)
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}

// bfsFrom runs a 4-connected breadth-first search over open cells and
// returns the parent index of every visited cell (-1 for the root, -2 for
// unvisited).
func (s *Scene) bfsFrom(col, row int) []int {
	parent := make([]int, len(s.cells))
	for i := range parent {
		parent[i] = -2
	}
	if !s.IsOpen(col, row) {
		return parent
	}
	key := func(c, r int) int { return r*s.Width + c }
	root := key(col, row)
	parent[root] = -1
	queue := []int{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cc, cr := cur%s.Width, cur/s.Width
		for _, d := range neighbourDirs {
			nc, nr := cc+d[0], cr+d[1]
			if !s.IsOpen(nc, nr) {
				continue
			}
			nk := key(nc, nr)
			if parent[nk] != -2 {
				continue
			}
			parent[nk] = cur
			queue = append(queue, nk)
		}
	}
	return parent
}

// SolvePath returns the shortest cell path from the start cell to the goal,
// both ends included. It returns nil if the goal is missing or unreachable.
func SolvePath(s *Scene) [][2]int {
	gc, gr, ok := s.Goal()
	if !ok {
		return nil
	}
	sc, sr := CellOf(s.Start)
	parent := s.bfsFrom(sc, sr)
	goal := gr*s.Width + gc
	if parent[goal] == -2 {
		return nil
	}
	var cells [][2]int
	for n := goal; n != -1; n = parent[n] {
		cells = append(cells, [2]int{n % s.Width, n / s.Width})
	}
	// Reverse
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// AnalyzeMaze computes connectivity and shape statistics for s.
func AnalyzeMaze(s *Scene) MazeStats {
	st := MazeStats{Width: s.Width, Height: s.Height, Fingerprint: s.Fingerprint()}
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			c := s.At(col, row)
			if c == CellWall {
				continue
			}
			st.OpenCells++
			if c == CellGoal {
				st.GoalCount++
			}
			n := s.openNeighbours(col, row)
			switch {
			case n == 1:
				st.DeadEnds++
			case n >= 3:
				st.Junctions++
			}
			// Count each edge once, from its left or upper end.
			if s.IsOpen(col+1, row) {
				st.Edges++
			}
			if s.IsOpen(col, row+1) {
				st.Edges++
			}
		}
	}

	sc, sr := CellOf(s.Start)
	for _, p := range s.bfsFrom(sc, sr) {
		if p != -2 {
			st.Reachable++
		}
	}
	st.Connected = st.OpenCells > 0 && st.Reachable == st.OpenCells
	st.Acyclic = st.Connected && st.Edges == st.OpenCells-1
	st.SolutionLen = len(SolvePath(s))
	return st
}

// Package hex provides cube and offset coordinates for a pointy-top hex grid.
// Offset coordinates use the odd-r layout: odd rows sit half a cell to the right.
package hex

import "fmt"

// Cube represents cube coordinates (q, r, s) with q+r+s=0.
type Cube struct {
	Q int
	R int
	S int
}

// NewCube builds a cube coordinate. The third component is never trusted;
// it is always recomputed as -q-r.
func NewCube(q, r, _ int) Cube {
	return Cube{Q: q, R: r, S: -q - r}
}

// Axial builds a cube coordinate from an axial (q, r) pair.
func Axial(q, r int) Cube {
	return Cube{Q: q, R: r, S: -q - r}
}

// CubeDirections are the six unit steps in cube space, starting east and
// proceeding counter-clockwise.
var CubeDirections = [6]Cube{
	{Q: +1, R: 0, S: -1},
	{Q: +1, R: -1, S: 0},
	{Q: 0, R: -1, S: +1},
	{Q: -1, R: 0, S: +1},
	{Q: -1, R: +1, S: 0},
	{Q: 0, R: +1, S: -1},
}

// Add returns c+o.
func (c Cube) Add(o Cube) Cube { return Axial(c.Q+o.Q, c.R+o.R) }

// Sub returns c-o.
func (c Cube) Sub(o Cube) Cube { return Axial(c.Q-o.Q, c.R-o.R) }

// Scale multiplies each component by k.
func (c Cube) Scale(k int) Cube { return Axial(c.Q*k, c.R*k) }

// String returns a compact representation for logs.
func (c Cube) String() string {
	return fmt.Sprintf("Hex(%d, %d, %d)", c.Q, c.R, c.S)
}

// Distance returns the hex distance between two cube coordinates.
func Distance(a, b Cube) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

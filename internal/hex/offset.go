package hex

import "fmt"

// Offset is the grid's native (col, row) address in the odd-r layout.
type Offset struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Directions for offset neighbors, indexed by row parity. Entry i of both
// tables is the offset image of CubeDirections[i].
var (
	evenRowDirections = [6]Offset{
		{+1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, +1}, {0, +1},
	}
	oddRowDirections = [6]Offset{
		{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {0, +1}, {+1, +1},
	}
)

// String returns a compact representation for logs.
func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.Col, o.Row)
}

// OddRow reports whether the offset sits on a shifted row.
func (o Offset) OddRow() bool {
	return o.Row&1 == 1
}

// ToCube converts an offset coordinate to cube space.
func ToCube(o Offset) Cube {
	q := o.Col - (o.Row-(o.Row&1))/2
	return Axial(q, o.Row)
}

// ToOffset converts a cube coordinate back to offset space.
func ToOffset(c Cube) Offset {
	col := c.Q + (c.R-(c.R&1))/2
	return Offset{Col: col, Row: c.R}
}

// Neighbors returns the six adjacent offsets, in CubeDirections order.
func Neighbors(o Offset) [6]Offset {
	dirs := &evenRowDirections
	if o.OddRow() {
		dirs = &oddRowDirections
	}
	var result [6]Offset
	for i, d := range dirs {
		result[i] = Offset{Col: o.Col + d.Col, Row: o.Row + d.Row}
	}
	return result
}

// Neighbor returns the neighbor in direction dir. Directions wrap modulo 6.
func (o Offset) Neighbor(dir int) Offset {
	dir %= 6
	if dir < 0 {
		dir += 6
	}
	return Neighbors(o)[dir]
}

// OffsetDistance returns the hex distance between two offsets.
func OffsetDistance(a, b Offset) int {
	return Distance(ToCube(a), ToCube(b))
}

// IsAdjacent reports whether a and b share an edge. Symmetric by construction.
func IsAdjacent(a, b Offset) bool {
	return OffsetDistance(a, b) == 1
}

// Range returns every offset within radius of center (inclusive),
// ordered by cube q then r.
func Range(center Offset, radius int) []Offset {
	if radius < 0 {
		return nil
	}
	c := ToCube(center)
	res := make([]Offset, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			res = append(res, ToOffset(c.Add(Axial(q, r))))
		}
	}
	return res
}

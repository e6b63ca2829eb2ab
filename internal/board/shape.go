package board

import "github.com/samdwyer/hexlink/internal/hex"

// Shape is the board outline: Width columns by Height rows, centered on
// offset (0, 0). Rows with an even absolute index carry one extra cell on
// the right, which gives the staggered honeycomb edge.
type Shape struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// origin returns the offset of the top-left cell.
func (s Shape) origin() hex.Offset {
	return hex.Offset{Col: -(s.Width / 2) - 1, Row: -(s.Height / 2)}
}

// rowLength returns the number of cells on the given row.
func (s Shape) rowLength(row int) int {
	if row&1 == 0 {
		return s.Width + 1
	}
	return s.Width
}

// InBounds reports whether o lies inside the shape.
func (s Shape) InBounds(o hex.Offset) bool {
	if s.Width < 1 || s.Height < 1 {
		return false
	}
	org := s.origin()
	row := o.Row - org.Row
	if row < 0 || row >= s.Height {
		return false
	}
	col := o.Col - org.Col
	return col >= 0 && col < s.rowLength(o.Row)
}

// Cells returns every in-bounds offset in row-major order.
func (s Shape) Cells() []hex.Offset {
	if s.Width < 1 || s.Height < 1 {
		return nil
	}
	org := s.origin()
	cells := make([]hex.Offset, 0, s.Height*(s.Width+1))
	for y := 0; y < s.Height; y++ {
		row := org.Row + y
		for x := 0; x < s.rowLength(row); x++ {
			cells = append(cells, hex.Offset{Col: org.Col + x, Row: row})
		}
	}
	return cells
}

// Bounds returns the smallest and largest column and row any cell uses.
func (s Shape) Bounds() (lo, hi hex.Offset) {
	org := s.origin()
	return org, hex.Offset{Col: org.Col + s.Width, Row: org.Row + s.Height - 1}
}

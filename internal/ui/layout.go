package ui

import (
	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/hex"
)

// Terminal footprint of one hex.
const (
	CellWidth = 4 // Columns per hex; odd rows shift by half of this
	RowHeight = 2 // Terminal rows per board row
)

// Layout projects board offsets onto terminal cells and back.
type Layout struct {
	Shape   board.Shape
	OriginX int // Terminal column of the leftmost hex on an even row
	OriginY int // Terminal row of the top board row
}

// NewLayout places shape with its top-left corner at (x, y).
func NewLayout(shape board.Shape, x, y int) Layout {
	return Layout{Shape: shape, OriginX: x, OriginY: y}
}

func rowShift(row int) int {
	if row&1 == 1 {
		return CellWidth / 2
	}
	return 0
}

// Pos returns the terminal cell where the hex at o starts.
func (l Layout) Pos(o hex.Offset) (x, y int) {
	lo, _ := l.Shape.Bounds()
	x = l.OriginX + (o.Col-lo.Col)*CellWidth + rowShift(o.Row)
	y = l.OriginY + (o.Row-lo.Row)*RowHeight
	return x, y
}

// CellAt returns the in-bounds offset drawn at terminal cell (x, y). Both
// terminal rows of a board row, and all CellWidth columns of a hex, hit it.
func (l Layout) CellAt(x, y int) (hex.Offset, bool) {
	dy := y - l.OriginY
	if dy < 0 {
		return hex.Offset{}, false
	}
	lo, _ := l.Shape.Bounds()
	row := lo.Row + dy/RowHeight

	dx := x - l.OriginX - rowShift(row)
	if dx < 0 {
		return hex.Offset{}, false
	}
	o := hex.Offset{Col: lo.Col + dx/CellWidth, Row: row}
	if !l.Shape.InBounds(o) {
		return hex.Offset{}, false
	}
	return o, true
}

// Size returns the terminal width and height the board occupies.
func (l Layout) Size() (width, height int) {
	if l.Shape.Width < 1 || l.Shape.Height < 1 {
		return 0, 0
	}
	return (l.Shape.Width + 1) * CellWidth, (l.Shape.Height-1)*RowHeight + 1
}

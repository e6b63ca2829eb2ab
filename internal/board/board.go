package board

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexlink/internal/hex"
	"github.com/samdwyer/hexlink/internal/telemetry"
)

// DefaultShape is the 7x7 honeycomb used when no shape is configured.
var DefaultShape = Shape{Width: 7, Height: 7}

// Board maps in-bounds offsets to tiles. Cells may be empty; every query on
// an empty or out-of-range cell is a no-op rather than an error.
//
// A Board is not safe for concurrent use.
type Board struct {
	Shape Shape
	tiles map[hex.Offset]*Tile
	rng   *rand.Rand
}

// NewBoard creates an empty board. A nil rng is replaced by a time-seeded one.
func NewBoard(shape Shape, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		Shape: shape,
		tiles: make(map[hex.Offset]*Tile),
		rng:   rng,
	}
}

// Fill discards all tiles and spawns a random tile in every in-bounds cell.
func (b *Board) Fill(ctx context.Context) {
	_, span := telemetry.Tracer("board").Start(ctx, "board.fill")
	defer span.End()

	clear(b.tiles)
	for _, o := range b.Shape.Cells() {
		b.Spawn(o, b.RandomColor(), StateNormal)
	}

	span.SetAttributes(
		attribute.Int("board.width", b.Shape.Width),
		attribute.Int("board.height", b.Shape.Height),
		attribute.Int("board.tiles", len(b.tiles)),
	)
	slog.Debug("board filled", "width", b.Shape.Width, "height", b.Shape.Height, "tiles", len(b.tiles))
}

// InBounds reports whether o lies inside the board's shape.
func (b *Board) InBounds(o hex.Offset) bool {
	return b.Shape.InBounds(o)
}

// TileAt returns the tile at o, or false if the cell is empty or out of range.
func (b *Board) TileAt(o hex.Offset) (*Tile, bool) {
	t, ok := b.tiles[o]
	return t, ok
}

// Spawn places a new active tile at o, replacing any tile already there.
// Out-of-bounds offsets are ignored and report false.
func (b *Board) Spawn(o hex.Offset, color Color, state TileState) (*Tile, bool) {
	if !b.Shape.InBounds(o) {
		return nil, false
	}
	t := &Tile{
		Position: o,
		Color:    color,
		State:    state,
		Active:   true,
	}
	b.tiles[o] = t
	return t, true
}

// Remove unmaps the tile at o. Removing an empty cell does nothing.
func (b *Board) Remove(o hex.Offset) {
	delete(b.tiles, o)
}

// SetState changes the state of the tile at o. Reports false if the cell is empty.
func (b *Board) SetState(o hex.Offset, state TileState) bool {
	t, ok := b.tiles[o]
	if !ok {
		return false
	}
	t.State = state
	return true
}

// SetSelected flags or unflags the tile at o. Reports false if the cell is empty.
func (b *Board) SetSelected(o hex.Offset, selected bool) bool {
	t, ok := b.tiles[o]
	if !ok {
		return false
	}
	t.Selected = selected
	return true
}

// SetActive enables or disables the tile at o. Inactive tiles stay on the
// board but cannot be selected. Reports false if the cell is empty.
func (b *Board) SetActive(o hex.Offset, active bool) bool {
	t, ok := b.tiles[o]
	if !ok {
		return false
	}
	t.Active = active
	return true
}

// RandomColor picks one of the six colors uniformly.
func (b *Board) RandomColor() Color {
	return Colors[b.rng.Intn(len(Colors))]
}

// Tiles returns the present tiles in row-major order.
func (b *Board) Tiles() []*Tile {
	result := make([]*Tile, 0, len(b.tiles))
	for _, o := range b.Shape.Cells() {
		if t, ok := b.tiles[o]; ok {
			result = append(result, t)
		}
	}
	return result
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return len(b.tiles)
}

// ItemTileCount returns how many tiles currently carry an item effect.
func (b *Board) ItemTileCount() int {
	count := 0
	for _, t := range b.tiles {
		if t.State.IsItem() {
			count++
		}
	}
	return count
}

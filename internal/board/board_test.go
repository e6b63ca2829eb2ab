package board

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/hexlink/internal/hex"
)

func newTestBoard(seed int64) *Board {
	return NewBoard(DefaultShape, rand.New(rand.NewSource(seed)))
}

func TestShapeInBounds7x7(t *testing.T) {
	shape := Shape{Width: 7, Height: 7}

	// Rows -3..3; columns -4..2, plus column 3 on even rows.
	for row := -6; row <= 6; row++ {
		for col := -8; col <= 8; col++ {
			o := hex.Offset{Col: col, Row: row}
			want := row >= -3 && row <= 3 && col >= -4 && col <= 2
			if row >= -3 && row <= 3 && row%2 == 0 && col == 3 {
				want = true
			}
			if got := shape.InBounds(o); got != want {
				t.Errorf("InBounds(%v) = %v, want %v", o, got, want)
			}
		}
	}
}

func TestShapeCells(t *testing.T) {
	shape := Shape{Width: 7, Height: 7}
	cells := shape.Cells()

	if len(cells) != 52 {
		t.Fatalf("len(Cells()) = %d, want 52", len(cells))
	}
	seen := make(map[hex.Offset]bool)
	for _, o := range cells {
		if !shape.InBounds(o) {
			t.Errorf("Cells() includes out-of-bounds %v", o)
		}
		if seen[o] {
			t.Errorf("Cells() repeats %v", o)
		}
		seen[o] = true
	}
	if cells[0] != (hex.Offset{Col: -4, Row: -3}) {
		t.Errorf("Cells()[0] = %v, want (-4,-3)", cells[0])
	}
}

func TestShapeDegenerate(t *testing.T) {
	for _, s := range []Shape{{0, 5}, {5, 0}, {-1, -1}} {
		if s.InBounds(hex.Offset{}) {
			t.Errorf("%+v.InBounds(0,0) = true, want false", s)
		}
		if len(s.Cells()) != 0 {
			t.Errorf("%+v.Cells() not empty", s)
		}
	}
}

func TestFill(t *testing.T) {
	b := newTestBoard(1)
	b.Fill(context.Background())

	if b.Len() != 52 {
		t.Fatalf("Len() = %d, want 52", b.Len())
	}
	for _, o := range b.Shape.Cells() {
		tile, ok := b.TileAt(o)
		if !ok {
			t.Fatalf("TileAt(%v) missing after Fill", o)
		}
		if !tile.Active || tile.Selected || tile.State != StateNormal || tile.Position != o {
			t.Errorf("TileAt(%v) = %+v, want fresh active normal tile", o, *tile)
		}
	}
}

func TestFillReproducible(t *testing.T) {
	b1 := newTestBoard(42)
	b2 := newTestBoard(42)
	ctx := context.Background()
	b1.Fill(ctx)
	b2.Fill(ctx)

	t1, t2 := b1.Tiles(), b2.Tiles()
	for i := range t1 {
		if t1[i].Color != t2[i].Color {
			t.Errorf("tile %v color %v != %v", t1[i].Position, t1[i].Color, t2[i].Color)
		}
	}
}

func TestTileAtOutOfRange(t *testing.T) {
	b := newTestBoard(1)
	b.Fill(context.Background())

	if tile, ok := b.TileAt(hex.Offset{Col: 50, Row: 50}); ok || tile != nil {
		t.Errorf("TileAt(out of range) = %v, %v; want nil, false", tile, ok)
	}
}

func TestSpawnOutOfBoundsIsNoop(t *testing.T) {
	b := newTestBoard(1)
	o := hex.Offset{Col: 3, Row: 1} // odd row has no extra column

	tile, ok := b.Spawn(o, Red, StateNormal)
	if ok || tile != nil {
		t.Errorf("Spawn(%v) = %v, %v; want nil, false", o, tile, ok)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after out-of-bounds spawn, want 0", b.Len())
	}
}

func TestSpawnOverwrites(t *testing.T) {
	b := newTestBoard(1)
	o := hex.Offset{Col: 0, Row: 0}

	b.Spawn(o, Red, StateNormal)
	b.SetSelected(o, true)
	b.Spawn(o, Blue, StateItemLv2)

	tile, ok := b.TileAt(o)
	if !ok {
		t.Fatal("tile missing after spawn")
	}
	if tile.Color != Blue || tile.State != StateItemLv2 || tile.Selected {
		t.Errorf("TileAt(%v) = %+v, want fresh blue item_lv2 tile", o, *tile)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestRemoveIdempotent(t *testing.T) {
	b := newTestBoard(1)
	b.Fill(context.Background())
	o := hex.Offset{Col: 0, Row: 0}

	b.Remove(o)
	if _, ok := b.TileAt(o); ok {
		t.Fatal("tile still present after Remove")
	}
	before := b.Len()
	b.Remove(o)
	b.Remove(hex.Offset{Col: 99, Row: 99})
	if b.Len() != before {
		t.Errorf("Len() = %d after removing absent cells, want %d", b.Len(), before)
	}
}

func TestSettersOnEmptyCell(t *testing.T) {
	b := newTestBoard(1)
	o := hex.Offset{Col: 1, Row: 1}

	if b.SetState(o, StateItemLv1) {
		t.Error("SetState on empty cell reported true")
	}
	if b.SetSelected(o, true) {
		t.Error("SetSelected on empty cell reported true")
	}
	if b.SetActive(o, false) {
		t.Error("SetActive on empty cell reported true")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestItemTileCount(t *testing.T) {
	b := newTestBoard(1)
	b.Fill(context.Background())

	b.SetState(hex.Offset{Col: 0, Row: 0}, StateItemLv1)
	b.SetState(hex.Offset{Col: 1, Row: 0}, StateItemLv2)
	b.SetState(hex.Offset{Col: 2, Row: 0}, StateNormal)

	if got := b.ItemTileCount(); got != 2 {
		t.Errorf("ItemTileCount() = %d, want 2", got)
	}
}

func TestRandomColorCoversAllColors(t *testing.T) {
	b := newTestBoard(7)
	counts := make(map[Color]int)
	for i := 0; i < 6000; i++ {
		counts[b.RandomColor()]++
	}
	for _, c := range Colors {
		if counts[c] < 800 {
			t.Errorf("color %v drawn %d times out of 6000", c, counts[c])
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
		valid bool
	}{
		{"red", Red, true},
		{"Cyan", Cyan, true},
		{" purple ", Purple, true},
		{"green", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.valid && (err != nil || got != tt.want) {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should fail", tt.input)
		}
	}
}

func TestTileStateString(t *testing.T) {
	tests := []struct {
		state    TileState
		expected string
	}{
		{StateNormal, "normal"},
		{StateItemLv1, "item_lv1"},
		{StateItemLv2, "item_lv2"},
		{TileState(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("TileState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/hex"
)

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	screen, err := NewSimulationScreen(80, 30)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error = %v", err)
	}
	t.Cleanup(screen.Close)
	palette := map[board.Color]tcell.Color{board.Red: tcell.ColorRed, board.Blue: tcell.ColorBlue}
	return NewRenderer(screen, NewLayout(board.DefaultShape, 1, 1), palette), screen
}

func readLine(s *Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _ := s.Content(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestRenderTiles(t *testing.T) {
	r, screen := newTestRenderer(t)
	b := board.NewBoard(board.DefaultShape, rand.New(rand.NewSource(1)))
	plain := hex.Offset{Col: 0, Row: 0}
	item := hex.Offset{Col: 1, Row: 1}
	picked := hex.Offset{Col: -1, Row: -1}
	b.Spawn(plain, board.Red, board.StateNormal)
	b.Spawn(item, board.Blue, board.StateItemLv2)
	b.Spawn(picked, board.Red, board.StateItemLv1)
	b.SetSelected(picked, true)

	r.Render(View{Board: b})

	x, y := r.Layout().Pos(plain)
	if got, style := screen.Content(x+1, y); got != glyphNormal {
		t.Errorf("glyph at %v = %q, want %q", plain, got, glyphNormal)
	} else if fg, _, _ := style.Decompose(); fg != tcell.ColorRed {
		t.Errorf("color at %v = %v, want red", plain, fg)
	}

	x, y = r.Layout().Pos(item)
	if got, _ := screen.Content(x+1, y); got != glyphItemLv2 {
		t.Errorf("glyph at %v = %q, want %q", item, got, glyphItemLv2)
	}

	x, y = r.Layout().Pos(picked)
	left, _ := screen.Content(x, y)
	right, _ := screen.Content(x+2, y)
	if left != '[' || right != ']' {
		t.Errorf("selected tile drawn as %q%q, want brackets", left, right)
	}
}

func TestRenderPreviewOnEmptyCell(t *testing.T) {
	r, screen := newTestRenderer(t)
	b := board.NewBoard(board.DefaultShape, nil)
	p := hex.Offset{Col: 2, Row: 2}

	r.Render(View{Board: b, Preview: &p})

	x, y := r.Layout().Pos(p)
	if got, _ := screen.Content(x+1, y); got != glyphPreview {
		t.Errorf("preview glyph = %q, want %q", got, glyphPreview)
	}
}

func TestRenderHUD(t *testing.T) {
	r, screen := newTestRenderer(t)
	b := board.NewBoard(board.DefaultShape, nil)

	r.Render(View{Board: b, Score: 12345, Matches: 3, Status: "nice"})

	_, h := r.Layout().Size()
	top := readLine(screen, 1+h+1, 80)
	if !strings.Contains(top, "Score 12,345") || !strings.Contains(top, "Matches 3") {
		t.Errorf("HUD line = %q", top)
	}
}

func TestHUDLines(t *testing.T) {
	v := View{
		Score:      1500,
		Chain:      []hex.Offset{{}, {Col: 1}},
		ChainColor: board.Cyan,
		Best:       &Record{Length: 9, Color: board.Purple, At: time.Now().Add(-3 * time.Hour)},
		Recent:     []Record{{Length: 4, Color: board.Red}, {Length: 9, Color: board.Purple}},
		Status:     "chain broken",
	}

	lines := HUDLines(v)
	if len(lines) != 6 {
		t.Fatalf("len(HUDLines()) = %d, want 6", len(lines))
	}
	if lines[0] != "Score 1,500   Matches 0" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "Best chain 9 purple, 3 hours ago" {
		t.Errorf("lines[1] = %q", lines[1])
	}
	if lines[2] != "Recent 4 red, 9 purple" {
		t.Errorf("lines[2] = %q", lines[2])
	}
	if lines[3] != "Linking 2 cyan" {
		t.Errorf("lines[3] = %q", lines[3])
	}
	if lines[4] != "chain broken" {
		t.Errorf("lines[4] = %q", lines[4])
	}

	empty := HUDLines(View{})
	if empty[1] != "Best chain -" {
		t.Errorf("empty best = %q", empty[1])
	}
	if empty[2] != "Recent -" {
		t.Errorf("empty recent = %q", empty[2])
	}
}

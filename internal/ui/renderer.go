package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/hex"
)

// Tile glyphs by state.
const (
	glyphNormal  = '●'
	glyphItemLv1 = '◆'
	glyphItemLv2 = '★'
	glyphPreview = '·'
)

// View is everything the renderer needs for one frame.
type View struct {
	Board      *board.Board
	Chain      []hex.Offset
	ChainColor board.Color
	Preview    *hex.Offset

	Score   int
	Matches int
	Best    *Record  // Longest chain on record, if any
	Recent  []Record // Latest matches, newest first
	Status  string
}

// Record is a past match shown in the HUD.
type Record struct {
	Length int
	Color  board.Color
	At     time.Time
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	layout  Layout
	palette map[board.Color]tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, layout Layout, palette map[board.Color]tcell.Color) *Renderer {
	return &Renderer{screen: screen, layout: layout, palette: palette}
}

// Layout returns the board projection in use.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws the board and HUD.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	for _, t := range v.Board.Tiles() {
		r.drawTile(t)
	}
	if v.Preview != nil && r.layout.Shape.InBounds(*v.Preview) {
		x, y := r.layout.Pos(*v.Preview)
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		r.screen.SetContent(x, y, '(', style)
		r.screen.SetContent(x+2, y, ')', style)
		if _, ok := v.Board.TileAt(*v.Preview); !ok {
			r.screen.SetContent(x+1, y, glyphPreview, style)
		}
	}

	_, h := r.layout.Size()
	y := r.layout.OriginY + h + 1
	for _, line := range HUDLines(v) {
		r.drawText(r.layout.OriginX, y, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		y++
	}

	r.screen.Show()
}

func (r *Renderer) drawTile(t *board.Tile) {
	x, y := r.layout.Pos(t.Position)
	style := tcell.StyleDefault.Foreground(r.color(t.Color))
	if !t.Active {
		style = style.Dim(true)
	}
	if t.Selected {
		style = style.Bold(true).Reverse(true)
		r.screen.SetContent(x, y, '[', style)
		r.screen.SetContent(x+2, y, ']', style)
	}
	r.screen.SetContent(x+1, y, glyph(t.State), style)
}

func (r *Renderer) color(c board.Color) tcell.Color {
	if col, ok := r.palette[c]; ok {
		return col
	}
	return tcell.ColorDefault
}

func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

func glyph(s board.TileState) rune {
	switch s {
	case board.StateItemLv1:
		return glyphItemLv1
	case board.StateItemLv2:
		return glyphItemLv2
	default:
		return glyphNormal
	}
}

// HUDLines formats the status lines shown under the board.
func HUDLines(v View) []string {
	lines := []string{
		fmt.Sprintf("Score %s   Matches %s", humanize.Comma(int64(v.Score)), humanize.Comma(int64(v.Matches))),
	}

	if v.Best != nil {
		lines = append(lines, fmt.Sprintf("Best chain %d %s, %s",
			v.Best.Length, v.Best.Color, humanize.Time(v.Best.At)))
	} else {
		lines = append(lines, "Best chain -")
	}

	if len(v.Recent) > 0 {
		parts := make([]string, len(v.Recent))
		for i, rec := range v.Recent {
			parts[i] = fmt.Sprintf("%d %s", rec.Length, rec.Color)
		}
		lines = append(lines, "Recent "+strings.Join(parts, ", "))
	} else {
		lines = append(lines, "Recent -")
	}

	if len(v.Chain) > 0 {
		lines = append(lines, fmt.Sprintf("Linking %d %s", len(v.Chain), v.ChainColor))
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, v.Status, "drag to link  right-click cancel  r refill  q quit")
	return lines
}

// Package game runs the interactive puzzle: terminal input, scoring and
// match history around the selection engine.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/gamedata"
	"github.com/samdwyer/hexlink/internal/hex"
	"github.com/samdwyer/hexlink/internal/journal"
	"github.com/samdwyer/hexlink/internal/match"
	"github.com/samdwyer/hexlink/internal/selection"
	"github.com/samdwyer/hexlink/internal/telemetry"
	"github.com/samdwyer/hexlink/internal/ui"
)

// recentShown is how many past matches the HUD lists.
const recentShown = 3

// wheelMask covers scroll reports, which never press or release a button.
const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	board    *board.Board
	engine   *selection.Engine

	effects     *gamedata.EffectRegistry
	tileEffects gamedata.TileEffects
	journal     Recorder
	sessionID   string

	phase   Phase
	last    hex.Offset // Last board cell the pointer reported
	lastHit bool       // Whether last is meaningful

	score   int
	matches int
	best    *ui.Record
	recent  []ui.Record // Newest first, at most recentShown
	status  string
	pending []match.Result
	running bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := newGame(screen, cfg)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

func newGame(screen *ui.Screen, cfg Config) (*Game, error) {
	shape := cfg.Shape
	if shape == (board.Shape{}) {
		shape = board.DefaultShape
	}

	balance := cfg.Balance
	if balance == (gamedata.Balance{}) {
		loaded, err := gamedata.LoadBalance()
		if err != nil {
			return nil, err
		}
		balance = loaded
	}
	if err := balance.Validate(); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}
	effects, err := gamedata.LoadEffectRegistry()
	if err != nil {
		return nil, err
	}
	tileEffects, err := gamedata.LoadTileEffects()
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	b := board.NewBoard(shape, rng)

	g := &Game{
		screen:      screen,
		renderer:    ui.NewRenderer(screen, ui.NewLayout(shape, 2, 1), palette),
		board:       b,
		effects:     effects,
		tileEffects: tileEffects,
		journal:     cfg.Journal,
		sessionID:   uuid.NewString(),
		running:     true,
	}
	resolver := match.NewResolver(b, balance.TierConfig, balance.MaxItemTilesOnBoard)
	g.engine = selection.NewEngine(b, resolver, g)
	return g, nil
}

// SessionID identifies this run in the match journal.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	return g.score
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	g.init(ctx)

	// Main game loop
	for g.running {
		g.render()

		// Handle input (blocking)
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// init fills the board and loads the best chain on record.
func (g *Game) init(ctx context.Context) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	g.board.Fill(ctx)

	if g.journal != nil {
		best, ok, err := g.journal.Best(ctx)
		if err != nil {
			slog.Warn("journal unavailable", "error", err)
		} else if ok {
			g.best = &ui.Record{Length: best.Length, Color: best.Color, At: best.CreatedAt}
		}

		entries, err := g.journal.Recent(ctx, recentShown)
		if err != nil {
			slog.Warn("journal unavailable", "error", err)
		}
		for _, e := range entries {
			g.recent = append(g.recent, ui.Record{Length: e.Length, Color: e.Color, At: e.CreatedAt})
		}
	}

	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("board.tiles", g.board.Len()),
		attribute.Bool("journal.enabled", g.journal != nil),
	)
	slog.Info("game started", "session", g.sessionID, "tiles", g.board.Len())
}

func (g *Game) render() {
	v := ui.View{
		Board:      g.board,
		Chain:      g.engine.Chain(),
		ChainColor: g.engine.Color(),
		Score:      g.score,
		Matches:    g.matches,
		Best:       g.best,
		Recent:     g.recent,
		Status:     g.status,
	}
	if p, ok := g.engine.Preview(); ok {
		v.Preview = &p
	}
	g.renderer.Render(v)
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			g.refill(ctx)
		}
	}
}

// handleMouseEvent turns button state changes into engine calls. tcell
// reports the current button mask, so press and release are edges between
// consecutive events.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	cell, hit := g.renderer.Layout().CellAt(x, y)
	if buttons&wheelMask != 0 {
		return
	}

	switch {
	case buttons&tcell.Button2 != 0:
		g.engine.Cancel()
		g.phase = PhaseReleased

	case buttons&tcell.Button1 != 0:
		if g.phase == PhaseReleased {
			g.phase = PhaseDragging
			g.last, g.lastHit = cell, hit
			if hit {
				g.engine.Down(cell)
			}
			return
		}
		// Repeated reports for the same cell never reach the engine.
		if hit && (!g.lastHit || cell != g.last) {
			g.last, g.lastHit = cell, true
			g.engine.Move(cell)
		}

	case buttons&tcell.Button3 != 0:
		// Middle button is unbound and does not end a drag.

	default:
		if g.phase == PhaseDragging {
			g.phase = PhaseReleased
			g.release(ctx)
		}
	}
}

// release ends the gesture and settles any match it produced.
func (g *Game) release(ctx context.Context) {
	result, resolved := g.engine.Up(ctx)
	if resolved && !result.Matched {
		g.status = "no match: " + result.Rejection.String()
	}

	pending := g.pending
	g.pending = nil
	for _, r := range pending {
		g.settle(ctx, r)
	}
}

// refill discards any open chain and rerolls every tile.
func (g *Game) refill(ctx context.Context) {
	g.engine.Cancel()
	g.board.Fill(ctx)
	g.status = "board refilled"
}

// ChainChanged implements selection.Listener.
func (g *Game) ChainChanged(ev selection.ChainEvent) {
	switch ev.Reason {
	case selection.ReasonStarted:
		g.status = ""
	case selection.ReasonBroken:
		g.status = "chain broken: colors must match"
	}
}

// Matched implements selection.Listener. Results are settled once the
// gesture has fully ended.
func (g *Game) Matched(result match.Result) {
	g.pending = append(g.pending, result)
}

// Points returns the score a match is worth.
func Points(result match.Result) int {
	if !result.Matched {
		return 0
	}
	return result.Len() * (result.EffectLevel + 1)
}

// settle scores a match, records it and updates the status line.
func (g *Game) settle(ctx context.Context, result match.Result) {
	points := Points(result)
	g.score += points
	g.matches++
	g.status = g.describe(result, points)

	slog.Info("match",
		"session", g.sessionID,
		"color", result.Color,
		"length", result.Len(),
		"tier", result.Tier,
		"points", points,
	)

	rec := ui.Record{Length: result.Len(), Color: result.Color, At: time.Now()}
	if g.best == nil || rec.Length > g.best.Length {
		g.best = &rec
	}
	g.recent = append([]ui.Record{rec}, g.recent...)
	if len(g.recent) > recentShown {
		g.recent = g.recent[:recentShown]
	}

	if g.journal == nil {
		return
	}
	_, err := g.journal.Record(ctx, journal.Entry{
		SessionID:   g.sessionID,
		Color:       result.Color,
		Length:      result.Len(),
		EffectLevel: result.EffectLevel,
	})
	if err != nil {
		slog.Warn("failed to record match", "error", err)
	}
}

// describe formats the status line for a match.
func (g *Game) describe(result match.Result, points int) string {
	msg := fmt.Sprintf("+%d  linked %d %s", points, result.Len(), result.Color)
	if result.ItemTile == nil {
		return msg
	}

	effect := g.effects.EffectFor(result.Color)
	value := g.tileEffects.Value(effect, result.EffectLevel)
	msg += fmt.Sprintf("  %s lv%d item at %v", effect, result.EffectLevel, *result.ItemTile)

	switch effect {
	case gamedata.Recovery:
		msg += fmt.Sprintf(" (+%g stamina)", value)
	case gamedata.TimeFreeze:
		msg += fmt.Sprintf(" (%gs freeze)", value)
	case gamedata.Blast:
		radius := int(value)
		msg += fmt.Sprintf(" (radius %d, %d tiles)", radius, len(g.blastFootprint(*result.ItemTile, radius)))
	case gamedata.LineClear:
		msg += fmt.Sprintf(" (range %g)", value)
	case gamedata.PowerUp:
		msg += fmt.Sprintf(" (x%g damage)", value)
	}
	return msg
}

// blastFootprint lists the in-bounds cells a blast at center would cover.
func (g *Game) blastFootprint(center hex.Offset, radius int) []hex.Offset {
	var cells []hex.Offset
	for _, o := range hex.Range(center, radius) {
		if g.board.InBounds(o) {
			cells = append(cells, o)
		}
	}
	return cells
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

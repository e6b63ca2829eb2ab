package selection

import (
	"context"
	"slices"

	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/hex"
	"github.com/samdwyer/hexlink/internal/match"
)

// Resolver resolves a finished chain. *match.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, chain []hex.Offset) match.Result
}

// ChainEvent describes the chain after a change.
type ChainEvent struct {
	Chain   []hex.Offset
	Color   board.Color
	Preview *hex.Offset // Pointer position when it is off the chain tail
	Reason  Reason
}

// Listener receives selection notifications. Calls happen synchronously on
// the goroutine driving the Engine.
type Listener interface {
	ChainChanged(ev ChainEvent)
	Matched(result match.Result)
}

// NopListener ignores all notifications.
type NopListener struct{}

// ChainChanged implements Listener.
func (NopListener) ChainChanged(ChainEvent) {}

// Matched implements Listener.
func (NopListener) Matched(match.Result) {}

// Engine is the selection state machine. The board is never written here
// except for tile selection flags; replacement happens in the Resolver.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	board    *board.Board
	resolver Resolver
	listener Listener

	state   State
	chain   []hex.Offset
	color   board.Color
	pointer hex.Offset
}

// NewEngine creates an idle engine. A nil listener is replaced by NopListener.
func NewEngine(b *board.Board, r Resolver, l Listener) *Engine {
	if l == nil {
		l = NopListener{}
	}
	return &Engine{
		board:    b,
		resolver: r,
		listener: l,
	}
}

// State returns the current gesture state.
func (e *Engine) State() State {
	return e.state
}

// Chain returns a copy of the current chain.
func (e *Engine) Chain() []hex.Offset {
	return slices.Clone(e.chain)
}

// Color returns the chain color. Only meaningful while selecting.
func (e *Engine) Color() board.Color {
	return e.color
}

// Preview returns the last pointer position if it lies off the chain tail.
func (e *Engine) Preview() (hex.Offset, bool) {
	if e.state != StateSelecting || len(e.chain) == 0 {
		return hex.Offset{}, false
	}
	if e.pointer == e.chain[len(e.chain)-1] {
		return hex.Offset{}, false
	}
	return e.pointer, true
}

// Down starts a gesture at o. An open chain is discarded first. If o holds
// no active tile the engine stays idle.
func (e *Engine) Down(o hex.Offset) {
	if e.state == StateSelecting {
		e.reset(ReasonCleared)
	}

	t, ok := e.board.TileAt(o)
	if !ok || !t.Active {
		return
	}

	e.state = StateSelecting
	e.chain = append(e.chain[:0], o)
	e.color = t.Color
	e.pointer = o
	e.board.SetSelected(o, true)
	e.notify(ReasonStarted)
}

// Move feeds a pointer position. Repeated positions should be filtered by the
// caller. Moves while idle are ignored.
func (e *Engine) Move(o hex.Offset) {
	if e.state != StateSelecting {
		return
	}
	e.pointer = o

	last := len(e.chain) - 1
	if i := slices.Index(e.chain, o); i >= 0 && i < last {
		for _, removed := range e.chain[i+1:] {
			e.board.SetSelected(removed, false)
		}
		e.chain = e.chain[:i+1]
		e.notify(ReasonBacktracked)
		return
	}

	if !hex.IsAdjacent(e.chain[last], o) {
		return
	}
	t, ok := e.board.TileAt(o)
	if !ok || !t.Active {
		return
	}
	if t.Color != e.color {
		e.reset(ReasonBroken)
		return
	}

	e.chain = append(e.chain, o)
	e.board.SetSelected(o, true)
	e.notify(ReasonExtended)
}

// Up ends the gesture. A chain of at least two tiles is handed to the
// resolver; the second return value reports whether that happened. The
// engine is always idle afterwards.
func (e *Engine) Up(ctx context.Context) (match.Result, bool) {
	if e.state != StateSelecting {
		return match.Result{}, false
	}

	chain := slices.Clone(e.chain)
	e.reset(ReasonCleared)
	if len(chain) < match.MinChainLength {
		return match.Result{}, false
	}

	result := e.resolver.Resolve(ctx, chain)
	if result.Matched {
		e.listener.Matched(result)
	}
	return result, true
}

// Cancel drops the gesture without resolving it.
func (e *Engine) Cancel() {
	if e.state != StateSelecting {
		return
	}
	e.reset(ReasonCleared)
}

// reset deselects every chain tile and returns to idle.
func (e *Engine) reset(reason Reason) {
	for _, o := range e.chain {
		e.board.SetSelected(o, false)
	}
	e.chain = e.chain[:0]
	e.state = StateIdle
	e.notify(reason)
}

func (e *Engine) notify(reason Reason) {
	ev := ChainEvent{
		Chain:  e.Chain(),
		Color:  e.color,
		Reason: reason,
	}
	if p, ok := e.Preview(); ok {
		ev.Preview = &p
	}
	e.listener.ChainChanged(ev)
}

package match

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/hex"
	"github.com/samdwyer/hexlink/internal/telemetry"
)

// Resolver validates finished chains and replaces their tiles in place.
// Matched tiles are respawned at the same coordinates with fresh random
// colors; nothing falls or cascades.
type Resolver struct {
	board        *board.Board
	tiers        TierConfig
	maxItemTiles int
}

// NewResolver creates a resolver for b. maxItemTiles caps how many item
// tiles may sit on the board at once; 0 disables item placement.
func NewResolver(b *board.Board, tiers TierConfig, maxItemTiles int) *Resolver {
	return &Resolver{
		board:        b,
		tiers:        tiers,
		maxItemTiles: maxItemTiles,
	}
}

// Resolve re-validates chain against the current board and, if it holds,
// replaces every tile in it. An invalid chain leaves the board untouched.
func (r *Resolver) Resolve(ctx context.Context, chain []hex.Offset) Result {
	_, span := telemetry.Tracer("match").Start(ctx, "match.resolve")
	defer span.End()
	span.SetAttributes(attribute.Int("chain.length", len(chain)))

	color, reason := r.validate(chain)
	if reason != RejectNone {
		span.SetAttributes(attribute.String("match.rejection", reason.String()))
		slog.Debug("chain rejected", "length", len(chain), "reason", reason)
		return rejected(reason)
	}

	for _, o := range chain {
		r.board.Remove(o)
	}
	for _, o := range chain {
		r.board.Spawn(o, r.board.RandomColor(), board.StateNormal)
	}

	tier := Evaluate(r.tiers, len(chain))
	result := Result{
		Matched:     true,
		Color:       color,
		Coordinates: append([]hex.Offset(nil), chain...),
		Tier:        tier,
		EffectLevel: tier.EffectLevel(),
	}
	r.placeItemTile(&result)

	span.SetAttributes(
		attribute.String("chain.color", color.String()),
		attribute.String("match.tier", tier.String()),
		attribute.Bool("match.item_tile", result.ItemTile != nil),
		telemetry.Offsets("chain.coordinates", chain),
	)
	return result
}

// validate returns the chain color, or the first reason the chain fails.
func (r *Resolver) validate(chain []hex.Offset) (board.Color, Rejection) {
	if len(chain) < MinChainLength {
		return 0, RejectTooShort
	}

	first, ok := r.board.TileAt(chain[0])
	if !ok || !first.Active {
		return 0, RejectMissingTile
	}
	color := first.Color

	seen := make(map[hex.Offset]bool, len(chain))
	for i, o := range chain {
		if seen[o] {
			return 0, RejectDuplicate
		}
		seen[o] = true

		t, ok := r.board.TileAt(o)
		if !ok || !t.Active {
			return 0, RejectMissingTile
		}
		if t.Color != color {
			return 0, RejectColorMismatch
		}
		if i > 0 && !hex.IsAdjacent(chain[i-1], o) {
			return 0, RejectNotAdjacent
		}
	}
	return color, RejectNone
}

// placeItemTile upgrades the tile at the chain's end when the chain earned an
// effect level and the board is below its item tile cap.
func (r *Resolver) placeItemTile(result *Result) {
	if result.EffectLevel == 0 || r.maxItemTiles <= 0 {
		return
	}
	if r.board.ItemTileCount() >= r.maxItemTiles {
		return
	}
	end := result.Coordinates[len(result.Coordinates)-1]
	if r.board.SetState(end, TileStateFor(result.EffectLevel)) {
		result.ItemTile = &end
	}
}

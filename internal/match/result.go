package match

import (
	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/hex"
)

// Rejection explains why a chain did not resolve.
type Rejection int

const (
	// RejectNone means the chain resolved.
	RejectNone Rejection = iota
	// RejectTooShort means fewer than MinChainLength tiles.
	RejectTooShort
	// RejectMissingTile means a coordinate has no tile or an inactive one.
	RejectMissingTile
	// RejectColorMismatch means the chain mixes colors.
	RejectColorMismatch
	// RejectNotAdjacent means two consecutive coordinates do not touch.
	RejectNotAdjacent
	// RejectDuplicate means a coordinate appears twice.
	RejectDuplicate
)

// String returns a human-readable rejection name.
func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectTooShort:
		return "too_short"
	case RejectMissingTile:
		return "missing_tile"
	case RejectColorMismatch:
		return "color_mismatch"
	case RejectNotAdjacent:
		return "not_adjacent"
	case RejectDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Result is the outcome of resolving one chain.
type Result struct {
	Matched     bool
	Rejection   Rejection
	Color       board.Color
	Coordinates []hex.Offset // Resolved coordinates in chain order
	Tier        Tier
	EffectLevel int
	ItemTile    *hex.Offset // Where an item tile was placed, if any
}

// Len returns the number of resolved tiles.
func (r Result) Len() int {
	return len(r.Coordinates)
}

func rejected(reason Rejection) Result {
	return Result{Matched: false, Rejection: reason}
}

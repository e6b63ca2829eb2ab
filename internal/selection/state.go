// Package selection turns a stream of pointer events into a validated chain
// of same-colored, adjacent tiles.
package selection

// State is the gesture state of an Engine.
type State int

const (
	// StateIdle means no gesture is in progress.
	StateIdle State = iota
	// StateSelecting means a chain is being built.
	StateSelecting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}

// Reason says why a chain changed.
type Reason int

const (
	// ReasonStarted means a gesture began on a tile.
	ReasonStarted Reason = iota
	// ReasonExtended means a tile was appended.
	ReasonExtended
	// ReasonBacktracked means the pointer returned to an earlier tile.
	ReasonBacktracked
	// ReasonBroken means the pointer reached a tile of another color and
	// the whole chain was dropped.
	ReasonBroken
	// ReasonCleared means the gesture ended or was cancelled.
	ReasonCleared
)

// String returns a human-readable reason name.
func (r Reason) String() string {
	switch r {
	case ReasonStarted:
		return "started"
	case ReasonExtended:
		return "extended"
	case ReasonBacktracked:
		return "backtracked"
	case ReasonBroken:
		return "broken"
	case ReasonCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

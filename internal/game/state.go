package game

// Phase tracks the pointer gesture as seen by the host.
type Phase int

const (
	// PhaseReleased means no mouse button is held.
	PhaseReleased Phase = iota
	// PhaseDragging means the left button is held.
	PhaseDragging
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReleased:
		return "released"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

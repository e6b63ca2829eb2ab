package game

import (
	"context"

	"github.com/samdwyer/hexlink/internal/board"
	"github.com/samdwyer/hexlink/internal/gamedata"
	"github.com/samdwyer/hexlink/internal/journal"
)

// Recorder stores resolved matches. *journal.Journal satisfies it.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) (journal.Entry, error)
	Best(ctx context.Context) (journal.Entry, bool, error)
	Recent(ctx context.Context, n int) ([]journal.Entry, error)
}

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Shape is the board outline. The zero value means board.DefaultShape.
	Shape board.Shape

	// Balance holds tier thresholds and the item tile cap.
	Balance gamedata.Balance

	// Journal records every match. Nil disables history.
	Journal Recorder
}

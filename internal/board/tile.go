// Package board holds the sparse hex grid of colored tiles.
package board

import (
	"fmt"
	"strings"

	"github.com/samdwyer/hexlink/internal/hex"
)

// Color is one of the six tile colors.
type Color int

const (
	Red Color = iota
	Blue
	Yellow
	Purple
	Orange
	Cyan
)

// Colors lists every tile color in declaration order.
var Colors = [...]Color{Red, Blue, Yellow, Purple, Orange, Cyan}

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Purple:
		return "purple"
	case Orange:
		return "orange"
	case Cyan:
		return "cyan"
	default:
		return "unknown"
	}
}

// ParseColor converts a color name (case-insensitive) to a Color.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Colors {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown tile color %q", name)
}

// UnmarshalText lets colors appear by name in JSON and YAML data.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes the color name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// TileState marks whether a tile carries an item effect.
type TileState int

const (
	// StateNormal is a plain tile.
	StateNormal TileState = iota
	// StateItemLv1 carries a level 1 item effect.
	StateItemLv1
	// StateItemLv2 carries a level 2 item effect.
	StateItemLv2
)

// String returns a human-readable state name.
func (s TileState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateItemLv1:
		return "item_lv1"
	case StateItemLv2:
		return "item_lv2"
	default:
		return "unknown"
	}
}

// IsItem reports whether the state carries an item effect.
func (s TileState) IsItem() bool {
	return s == StateItemLv1 || s == StateItemLv2
}

// Tile is a single cell's content. Tiles are owned by a Board; read them
// freely but change them only through Board methods.
type Tile struct {
	Position hex.Offset
	Color    Color
	State    TileState
	Selected bool
	Active   bool
}

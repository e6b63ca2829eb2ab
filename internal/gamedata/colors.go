package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexlink/internal/board"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette maps each tile color to its display color.
type Palette map[board.Color]tcell.Color

// paletteFile is palette.json: color name to "#RRGGBB".
type paletteFile map[board.Color]string

// LoadPalette loads the embedded palette.json. Every tile color must be listed.
func LoadPalette() (Palette, error) {
	file, err := Load[paletteFile]("palette.json")
	if err != nil {
		return nil, err
	}

	palette := make(Palette, len(file))
	for _, c := range board.Colors {
		hex, ok := file[c]
		if !ok {
			return nil, fmt.Errorf("palette.json has no entry for %s", c)
		}
		color, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %s: %w", c, err)
		}
		palette[c] = color
	}
	return palette, nil
}

// Color returns the display color for c, or tcell.ColorDefault if unknown.
func (p Palette) Color(c board.Color) tcell.Color {
	if color, ok := p[c]; ok {
		return color
	}
	return tcell.ColorDefault
}

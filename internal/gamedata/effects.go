package gamedata

import (
	"fmt"
	"strings"

	"github.com/samdwyer/hexlink/internal/board"
)

// ItemEffect is what an item tile does when it is consumed.
type ItemEffect int

const (
	// Recovery restores stamina immediately.
	Recovery ItemEffect = iota
	// TimeFreeze pauses the stamina drain.
	TimeFreeze
	// Blast clears tiles within a radius.
	Blast
	// LineClear clears a straight line of tiles.
	LineClear
	// PowerUp multiplies the next attack.
	PowerUp
	// Rainbow creates a wildcard tile.
	Rainbow
)

var effectNames = [...]string{"recovery", "time_freeze", "blast", "line_clear", "power_up", "rainbow"}

// String returns the snake_case effect name used in the data files.
func (e ItemEffect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[e]
}

// UnmarshalText parses an effect name.
func (e *ItemEffect) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range effectNames {
		if n == name {
			*e = ItemEffect(i)
			return nil
		}
	}
	return fmt.Errorf("unknown item effect %q", name)
}

// defaultEffect is used for colors the mapping file leaves out.
func defaultEffect(c board.Color) ItemEffect {
	switch c {
	case board.Red:
		return Recovery
	case board.Blue:
		return TimeFreeze
	case board.Yellow:
		return Blast
	case board.Purple:
		return LineClear
	case board.Orange:
		return PowerUp
	case board.Cyan:
		return Rainbow
	default:
		return Recovery
	}
}

// ColorEffectEntry maps one tile color to an item effect.
type ColorEffectEntry struct {
	Color  board.Color `json:"color"`
	Effect ItemEffect  `json:"effect"`
}

// ColorEffectsFile represents the structure of color_effects.json.
type ColorEffectsFile struct {
	Mapping []ColorEffectEntry `json:"mapping"`
}

// EffectRegistry answers which effect a chain color grants.
type EffectRegistry struct {
	effects map[board.Color]ItemEffect
}

// NewEffectRegistry creates a registry. When a color appears twice the first
// entry wins.
func NewEffectRegistry(entries []ColorEffectEntry) *EffectRegistry {
	registry := &EffectRegistry{effects: make(map[board.Color]ItemEffect)}
	for _, e := range entries {
		if _, ok := registry.effects[e.Color]; !ok {
			registry.effects[e.Color] = e.Effect
		}
	}
	return registry
}

// LoadEffectRegistry loads the embedded color_effects.json.
func LoadEffectRegistry() (*EffectRegistry, error) {
	file, err := Load[ColorEffectsFile]("color_effects.json")
	if err != nil {
		return nil, err
	}
	return NewEffectRegistry(file.Mapping), nil
}

// EffectFor returns the effect for color, falling back to the stock mapping.
func (r *EffectRegistry) EffectFor(color board.Color) ItemEffect {
	if e, ok := r.effects[color]; ok {
		return e
	}
	return defaultEffect(color)
}

// HasMapping reports whether color was listed explicitly.
func (r *EffectRegistry) HasMapping(color board.Color) bool {
	_, ok := r.effects[color]
	return ok
}

// EffectLevelValues are the magnitudes of every effect at one level.
type EffectLevelValues struct {
	Level              int     `json:"level"`
	RecoveryAmount     float64 `json:"recoveryAmount"`     // Stamina restored
	TimeFreezeDuration float64 `json:"timeFreezeDuration"` // Seconds
	BlastRadius        int     `json:"blastRadius"`        // Hex distance
	LineClearRange     int     `json:"lineClearRange"`     // Tiles per direction
	PowerUpMultiplier  float64 `json:"powerUpMultiplier"`  // Damage factor
}

// TileEffects represents the structure of tile_effects.json.
type TileEffects struct {
	Level1 EffectLevelValues `json:"level1"`
	Level2 EffectLevelValues `json:"level2"`
}

// LoadTileEffects loads the embedded tile_effects.json.
func LoadTileEffects() (TileEffects, error) {
	return Load[TileEffects]("tile_effects.json")
}

// MustLoadTileEffects loads the effect magnitudes, panicking on error.
func MustLoadTileEffects() TileEffects {
	return MustLoad[TileEffects]("tile_effects.json")
}

// ForLevel returns the level 2 values for level >= 2 and level 1 otherwise.
func (t TileEffects) ForLevel(level int) EffectLevelValues {
	if level >= 2 {
		return t.Level2
	}
	return t.Level1
}

// Value returns the magnitude of effect at level. Rainbow has none.
func (t TileEffects) Value(effect ItemEffect, level int) float64 {
	v := t.ForLevel(level)
	switch effect {
	case Recovery:
		return v.RecoveryAmount
	case TimeFreeze:
		return v.TimeFreezeDuration
	case Blast:
		return float64(v.BlastRadius)
	case LineClear:
		return float64(v.LineClearRange)
	case PowerUp:
		return v.PowerUpMultiplier
	default:
		return 0
	}
}

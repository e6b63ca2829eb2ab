// Package match validates finished chains, replaces the matched tiles and
// grades the chain by length.
package match

import (
	"errors"
	"fmt"

	"github.com/samdwyer/hexlink/internal/board"
)

// MinChainLength is the shortest chain that can be resolved.
const MinChainLength = 2

// ErrTierOrder is returned by TierConfig.Validate for misordered thresholds.
var ErrTierOrder = errors.New("tier thresholds out of order")

// TierConfig holds the chain length thresholds for item rewards.
type TierConfig struct {
	MiddleChainMin int `json:"middleChainMin" yaml:"middle_chain_min"`
	MiddleChainMax int `json:"middleChainMax" yaml:"middle_chain_max"`
	LongChainMin   int `json:"longChainMin" yaml:"long_chain_min"`
}

// DefaultTierConfig returns the stock thresholds: 5-8 middle, 9+ long.
func DefaultTierConfig() TierConfig {
	return TierConfig{MiddleChainMin: 5, MiddleChainMax: 8, LongChainMin: 9}
}

// Validate checks 2 <= MiddleChainMin <= MiddleChainMax < LongChainMin.
func (c TierConfig) Validate() error {
	if c.MiddleChainMin < MinChainLength ||
		c.MiddleChainMax < c.MiddleChainMin ||
		c.LongChainMin <= c.MiddleChainMax {
		return fmt.Errorf("%w: middle %d-%d, long %d+", ErrTierOrder,
			c.MiddleChainMin, c.MiddleChainMax, c.LongChainMin)
	}
	return nil
}

// Tier grades a chain.
type Tier int

const (
	// TierShort earns no item.
	TierShort Tier = iota
	// TierMiddle earns a level 1 item.
	TierMiddle
	// TierLong earns a level 2 item.
	TierLong
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierShort:
		return "short"
	case TierMiddle:
		return "middle"
	case TierLong:
		return "long"
	default:
		return "unknown"
	}
}

// EffectLevel returns the item effect level (0, 1 or 2) the tier grants.
func (t Tier) EffectLevel() int {
	return int(t)
}

// Evaluate grades a chain length. The result is only meaningful for a
// config that passes Validate.
func Evaluate(cfg TierConfig, chainLength int) Tier {
	switch {
	case chainLength <= 0:
		return TierShort
	case chainLength >= cfg.LongChainMin:
		return TierLong
	case chainLength >= cfg.MiddleChainMin && chainLength <= cfg.MiddleChainMax:
		return TierMiddle
	default:
		return TierShort
	}
}

// EffectLevel is shorthand for Evaluate(cfg, chainLength).EffectLevel().
func EffectLevel(cfg TierConfig, chainLength int) int {
	return Evaluate(cfg, chainLength).EffectLevel()
}

// TileStateFor maps an effect level to the tile state that carries it.
func TileStateFor(effectLevel int) board.TileState {
	switch {
	case effectLevel >= 2:
		return board.StateItemLv2
	case effectLevel == 1:
		return board.StateItemLv1
	default:
		return board.StateNormal
	}
}

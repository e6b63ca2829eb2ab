package gamedata

import (
	"errors"

	"github.com/samdwyer/hexlink/internal/match"
)

// Balance holds the tunable numbers of the puzzle: the chain tier
// thresholds and the cap on item tiles.
type Balance struct {
	match.TierConfig    `yaml:",inline"`
	MaxItemTilesOnBoard int `json:"maxItemTilesOnBoard" yaml:"max_item_tiles_on_board"`
}

// Validate checks the tier ordering and that the item cap is not negative.
func (b *Balance) Validate() error {
	if err := b.TierConfig.Validate(); err != nil {
		return err
	}
	if b.MaxItemTilesOnBoard < 0 {
		return errors.New("maxItemTilesOnBoard must not be negative")
	}
	return nil
}

// LoadBalance loads the embedded balance.json.
func LoadBalance() (Balance, error) {
	return Load[Balance]("balance.json")
}

package equity

import "github.com/markdias/shutbox/tiles"

// EquityCalculator assigns a value to a candidate combination in the
// context of the whole open board. Higher is better.
type EquityCalculator interface {
	Equity(combo []tiles.Tile, openTiles []tiles.Tile) float64
}

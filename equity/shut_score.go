package equity

import (
	"github.com/samber/lo"

	"github.com/markdias/shutbox/movegen"
	"github.com/markdias/shutbox/tiles"
)

// ShutScoreCalculator is the static one-ply heuristic: heavily reward
// shutting high-value tiles, penalize the open remainder left behind,
// and nudge toward moves that leave more distinct values open, which
// keeps future rolls flexible. No lookahead.
type ShutScoreCalculator struct{}

func (ShutScoreCalculator) Equity(combo []tiles.Tile, openTiles []tiles.Tile) float64 {
	inCombo := make(map[int]bool, len(combo))
	for _, t := range combo {
		inCombo[t.ID] = true
	}
	shut := lo.SumBy(combo, func(t tiles.Tile) int { return t.Value })
	remainder := 0
	leftOpen := make(map[int]bool)
	for _, t := range openTiles {
		if t.Open && !inCombo[t.ID] {
			remainder += t.Value
			leftOpen[t.Value] = true
		}
	}
	return float64(shut*100 - remainder*10 + len(leftOpen))
}

// BestMove returns the recommended combination for the roll, or nil if
// none exists (the bust signal). Ties keep the first maximum in
// generation order, so identical inputs always yield identical output.
func BestMove(roll tiles.Roll, openTiles []tiles.Tile) []tiles.Tile {
	return BestMoveWith(ShutScoreCalculator{}, roll, openTiles)
}

// BestMoveWith is BestMove with a caller-supplied calculator.
func BestMoveWith(calc EquityCalculator, roll tiles.Roll, openTiles []tiles.Tile) []tiles.Tile {
	combos := movegen.Combinations(roll.Total(), openTiles)
	if len(combos) == 0 {
		return nil
	}
	best := combos[0]
	bestEq := calc.Equity(best, openTiles)
	for _, c := range combos[1:] {
		if eq := calc.Equity(c, openTiles); eq > bestEq {
			best, bestEq = c, eq
		}
	}
	return best
}

// Package rigging synthesizes dice rolls for scripted outcomes: given
// the open tiles, it finds a roll the player can actually pay for,
// preferring the highest achievable total.
package rigging

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/markdias/shutbox/movegen"
	"github.com/markdias/shutbox/tiles"
)

const maxRollTotal = 12

// RiggedRoll searches totals from 12 down to 1 and returns a roll for
// the first total that has a legal combination. With prefersSingleDie,
// totals of 6 or less come back as a single die. The second return is
// false when no total is achievable (empty or degenerate board).
func RiggedRoll(openTiles []tiles.Tile, prefersSingleDie bool) (tiles.Roll, bool) {
	open := tiles.OpenTiles(openTiles)
	if len(open) == 0 {
		return tiles.Roll{}, false
	}
	for total := maxRollTotal; total >= 1; total-- {
		combos := movegen.Combinations(total, open)
		if len(combos) == 0 {
			continue
		}
		if prefersSingleDie && total <= 6 {
			return tiles.SingleRoll(total), true
		}
		// Cosmetic: highlight the biggest clear for this total.
		biggest := lo.MaxBy(combos, func(a, b []tiles.Tile) bool { return len(a) > len(b) })
		log.Debug().Int("total", total).Int("tiles", len(biggest)).
			Msg("rigged roll target")
		return splitTotal(total), true
	}
	return tiles.Roll{}, false
}

// splitTotal realizes a total as die faces. Totals through 6 need only
// one face; otherwise take the largest legal first face.
func splitTotal(total int) tiles.Roll {
	if total <= 6 {
		return tiles.SingleRoll(total)
	}
	for first := min(6, total-1); first >= 1; first-- {
		if total-first <= 6 {
			return tiles.DoubleRoll(first, total-first)
		}
	}
	// Unreachable for totals in 1..12.
	return tiles.Roll{}
}

// Package selection validates incremental tile picks against the
// current roll: whether a finished selection matches the roll total,
// and whether adding one more tile can still complete to a legal
// combination.
package selection

import (
	"github.com/samber/lo"

	"github.com/markdias/shutbox/movegen"
	"github.com/markdias/shutbox/tiles"
)

// Validate reports whether the selected tiles exactly pay for the roll.
// A roll with no dice never validates.
func Validate(selected []tiles.Tile, roll tiles.Roll) bool {
	total := roll.Total()
	if total <= 0 {
		return false
	}
	return lo.SumBy(selected, func(t tiles.Tile) int { return t.Value }) == total
}

// IsSelectable reports whether tapping the given tile is a legal
// gesture. An already-selected tile is always selectable, so the player
// can back out of any partial pick. A fresh tile is selectable only if
// it is open, a roll is committed, the grown selection does not
// overshoot the roll, and at least one full combination for the roll
// still contains every selected tile. The last check is what stops the
// player from walking into a dead end that can never sum exactly.
func IsSelectable(tile tiles.Tile, currentSelection, openTiles []tiles.Tile, roll tiles.Roll) bool {
	for _, s := range currentSelection {
		if s.ID == tile.ID {
			return true
		}
	}
	total := roll.Total()
	if !tile.Open || total <= 0 {
		return false
	}
	sum := tile.Value + lo.SumBy(currentSelection, func(t tiles.Tile) int { return t.Value })
	if sum > total {
		return false
	}

	want := make(map[int]bool, len(currentSelection)+1)
	for _, s := range currentSelection {
		want[s.ID] = true
	}
	want[tile.ID] = true

	for _, combo := range movegen.Combinations(total, openTiles) {
		if containsAll(combo, want) {
			return true
		}
	}
	return false
}

func containsAll(combo []tiles.Tile, want map[int]bool) bool {
	found := 0
	for _, t := range combo {
		if want[t.ID] {
			found++
		}
	}
	return found == len(want)
}

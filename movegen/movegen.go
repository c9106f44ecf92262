// Package movegen generates every legal combination of open tiles for a
// dice total. A combination is a subset of open tiles whose values sum
// exactly to the target; subsets are distinguished by tile identity, so
// duplicate values on madness boards yield distinct combinations.
//
// Enumeration order is fixed: candidates are sorted ascending by value
// (ties by ID) and subsets are emitted in increasing-start-index order.
// The best-move tie-break in the equity package depends on this order.
package movegen

import (
	"sort"

	"github.com/samber/lo"

	"github.com/markdias/shutbox/tiles"
)

// Combinations returns every subset of open tiles summing exactly to
// target. A target of zero or less has no legal move and yields nil.
// Shut tiles in the input are ignored.
func Combinations(target int, openTiles []tiles.Tile) [][]tiles.Tile {
	if target <= 0 {
		return nil
	}
	cands := lo.Filter(openTiles, func(t tiles.Tile, _ int) bool { return t.Open })
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Value != cands[j].Value {
			return cands[i].Value < cands[j].Value
		}
		return cands[i].ID < cands[j].ID
	})

	var out [][]tiles.Tile
	var cur []tiles.Tile
	var search func(start, remaining int)
	search = func(start, remaining int) {
		if remaining == 0 {
			out = append(out, append([]tiles.Tile(nil), cur...))
			return
		}
		for i := start; i < len(cands); i++ {
			// Sorted ascending, so nothing past this index fits either.
			if cands[i].Value > remaining {
				break
			}
			cur = append(cur, cands[i])
			search(i+1, remaining-cands[i].Value)
			cur = cur[:len(cur)-1]
		}
	}
	search(0, target)
	return out
}

// HintedIDs returns the set of tile IDs that participate in at least
// one legal combination for the target. The UI lights these up.
func HintedIDs(target int, openTiles []tiles.Tile) map[int]bool {
	hinted := make(map[int]bool)
	for _, combo := range Combinations(target, openTiles) {
		for _, t := range combo {
			hinted[t.ID] = true
		}
	}
	return hinted
}

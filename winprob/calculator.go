// Package winprob estimates the probability of fully clearing a
// shut-the-box board under optimal die-mode and move choice at every
// step. It runs a memoized recursion over bit-encoded board states:
// 4096 states for a standard 12-tile board. Oversized madness boards
// blow the state space up exponentially; callers should gate
// evaluation to bounded boards.
package winprob

import "github.com/markdias/shutbox/tiles"

type outcome struct {
	total int
	prob  float64
}

// Single die: six equiprobable totals. Two dice: the classical 36-way
// weights for totals 2..12.
var (
	singleOutcomes = []outcome{
		{1, 1.0 / 6}, {2, 1.0 / 6}, {3, 1.0 / 6},
		{4, 1.0 / 6}, {5, 1.0 / 6}, {6, 1.0 / 6},
	}
	doubleOutcomes = []outcome{
		{2, 1.0 / 36}, {3, 2.0 / 36}, {4, 3.0 / 36}, {5, 4.0 / 36},
		{6, 5.0 / 36}, {7, 6.0 / 36}, {8, 5.0 / 36}, {9, 4.0 / 36},
		{10, 3.0 / 36}, {11, 2.0 / 36}, {12, 1.0 / 36},
	}
)

// Evaluate returns the probability, in [0,1], that the open tiles can
// all be shut under optimal play with the given one-die policy. An
// empty open set is a cleared board and evaluates to 1.
func Evaluate(openTiles []tiles.Tile, policy OneDiePolicy) float64 {
	return EvaluateMask(tiles.MaskOf(openTiles), policy)
}

// EvaluateMask is Evaluate on an already-derived value mask.
func EvaluateMask(mask tiles.ValueMask, policy OneDiePolicy) float64 {
	c := &calculator{
		policy: policy,
		probs:  make(map[tiles.ValueMask]float64),
		combos: make(map[comboKey][]tiles.ValueMask),
	}
	return c.eval(mask)
}

type comboKey struct {
	mask  tiles.ValueMask
	total int
}

// calculator carries the two memo tables for one Evaluate call. Both
// die out with the call, keeping the public functions referentially
// transparent.
type calculator struct {
	policy OneDiePolicy
	// probs memoizes P(mask); the result is path-independent.
	probs map[tiles.ValueMask]float64
	// combos memoizes the subset-sum enumeration per (mask, total);
	// the same subproblem recurs across outcomes and branches.
	combos map[comboKey][]tiles.ValueMask
}

func (c *calculator) eval(mask tiles.ValueMask) float64 {
	if mask == 0 {
		return 1
	}
	if p, ok := c.probs[mask]; ok {
		return p
	}
	best := c.modeValue(mask, doubleOutcomes)
	if c.policy.Permits(mask) {
		if v := c.modeValue(mask, singleOutcomes); v > best {
			best = v
		}
	}
	c.probs[mask] = best
	return best
}

// modeValue is the expected clearing probability of rolling in the
// given mode from this state, assuming the best continuation is taken
// for every outcome.
func (c *calculator) modeValue(mask tiles.ValueMask, outcomes []outcome) float64 {
	var ev float64
	for _, o := range outcomes {
		ev += o.prob * c.bestContinuation(mask, o.total)
	}
	return ev
}

// bestContinuation is the best P over all ways of paying the total out
// of the mask, or 0 if no subset matches (the bust branch).
func (c *calculator) bestContinuation(mask tiles.ValueMask, total int) float64 {
	var best float64
	for _, combo := range c.comboMasks(mask, total) {
		if p := c.eval(mask &^ combo); p > best {
			best = p
		}
	}
	return best
}

// comboMasks enumerates every submask of mask whose values sum to
// total. Same search as movegen.Combinations, but bit-encoded so
// results can be cached and applied with a single AND-NOT.
func (c *calculator) comboMasks(mask tiles.ValueMask, total int) []tiles.ValueMask {
	key := comboKey{mask, total}
	if found, ok := c.combos[key]; ok {
		return found
	}
	values := mask.Values()
	var out []tiles.ValueMask
	var search func(start, remaining int, acc tiles.ValueMask)
	search = func(start, remaining int, acc tiles.ValueMask) {
		if remaining == 0 {
			out = append(out, acc)
			return
		}
		for i := start; i < len(values); i++ {
			if values[i] > remaining {
				break
			}
			search(i+1, remaining-values[i], acc|tiles.ValueBit(values[i]))
		}
	}
	search(0, total, 0)
	c.combos[key] = out
	return out
}

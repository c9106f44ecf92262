// Package tiles models the physical pieces of a shut-the-box board:
// numbered tiles, dice rolls, and a bit-encoded view of which values
// remain open.
package tiles

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// MaxTileValue is the largest tile value any board may carry. Standard
// boards stop at 9 or 12; "madness" boards go higher, but never past
// this. ValueMask is sized against this constant, not the machine word.
const MaxTileValue = 24

// Tile is a single numbered flap on the box. ID and Value never change;
// Open flips to false exactly once per round, when the tile is shut.
type Tile struct {
	ID    int
	Value int
	Open  bool
}

// Roll is one or two die faces. A zero face means that die is absent;
// the zero value of Roll means "no roll yet".
type Roll struct {
	Die1 int
	Die2 int
}

// SingleRoll returns a roll of one die showing the given face.
func SingleRoll(face int) Roll {
	return Roll{Die1: face}
}

// DoubleRoll returns a roll of two dice.
func DoubleRoll(first, second int) Roll {
	return Roll{Die1: first, Die2: second}
}

// Total is the sum of the present faces. Zero means no roll.
func (r Roll) Total() int {
	return r.Die1 + r.Die2
}

// IsSingle reports whether exactly one die is present.
func (r Roll) IsSingle() bool {
	return r.Die1 != 0 && r.Die2 == 0
}

func (r Roll) String() string {
	if r.Die1 == 0 {
		return "(no roll)"
	}
	if r.Die2 == 0 {
		return strconv.Itoa(r.Die1)
	}
	return strconv.Itoa(r.Die1) + "+" + strconv.Itoa(r.Die2)
}

// ValueMask is a bit-encoded view of the open tile values: bit (v-1) is
// set iff a tile of value v is open. It is always derived from a tile
// collection and never mutated independently of it.
type ValueMask uint32

// ValueBit returns the mask bit for a single tile value.
func ValueBit(value int) ValueMask {
	return 1 << (value - 1)
}

// MaskOf derives the open-value mask from a tile collection. Shut tiles
// contribute nothing.
func MaskOf(ts []Tile) ValueMask {
	var m ValueMask
	for _, t := range ts {
		if t.Open {
			m |= ValueBit(t.Value)
		}
	}
	return m
}

// Has reports whether a tile of the given value is open in the mask.
func (m ValueMask) Has(value int) bool {
	return m&ValueBit(value) != 0
}

// Sum is the total of all open values in the mask.
func (m ValueMask) Sum() int {
	sum := 0
	for v := m; v != 0; v &= v - 1 {
		sum += bits.TrailingZeros32(uint32(v)) + 1
	}
	return sum
}

// MaxValue is the highest open value, or 0 for an empty mask.
func (m ValueMask) MaxValue() int {
	return bits.Len32(uint32(m))
}

// Count is the number of open values.
func (m ValueMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Values lists the open values in ascending order.
func (m ValueMask) Values() []int {
	vals := make([]int, 0, m.Count())
	for v := m; v != 0; v &= v - 1 {
		vals = append(vals, bits.TrailingZeros32(uint32(v))+1)
	}
	return vals
}

func (m ValueMask) String() string {
	vals := m.Values()
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(strs, ",") + "}"
}

// StandardBoard returns a fresh all-open board with tiles valued 1
// through maxValue, IDs matching values.
func StandardBoard(maxValue int) []Tile {
	ts := make([]Tile, maxValue)
	for i := range ts {
		ts[i] = Tile{ID: i + 1, Value: i + 1, Open: true}
	}
	return ts
}

// OpenTiles filters a collection down to its open tiles, sorted
// ascending by value (ties broken by ID). This is the canonical input
// order for combination generation.
func OpenTiles(ts []Tile) []Tile {
	open := make([]Tile, 0, len(ts))
	for _, t := range ts {
		if t.Open {
			open = append(open, t)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		if open[i].Value != open[j].Value {
			return open[i].Value < open[j].Value
		}
		return open[i].ID < open[j].ID
	})
	return open
}

// Shut returns a copy of the collection with every tile whose ID
// appears in toShut closed. Unknown IDs are ignored.
func Shut(ts []Tile, toShut []Tile) []Tile {
	ids := make(map[int]bool, len(toShut))
	for _, t := range toShut {
		ids[t.ID] = true
	}
	out := make([]Tile, len(ts))
	copy(out, ts)
	for i := range out {
		if ids[out[i].ID] {
			out[i].Open = false
		}
	}
	return out
}

// SumOpen is the total of all open tile values; the round score a
// player busts for.
func SumOpen(ts []Tile) int {
	sum := 0
	for _, t := range ts {
		if t.Open {
			sum += t.Value
		}
	}
	return sum
}

package movegen

import (
	"fmt"
	"sort"
	"testing"

	"github.com/matryer/is"

	"github.com/markdias/shutbox/tiles"
)

// comboKeys canonicalizes combinations as sorted id-set strings so two
// enumerations can be compared as sets.
func comboKeys(combos [][]tiles.Tile) map[string]bool {
	keys := make(map[string]bool, len(combos))
	for _, c := range combos {
		ids := make([]int, len(c))
		for i, t := range c {
			ids[i] = t.ID
		}
		sort.Ints(ids)
		keys[fmt.Sprint(ids)] = true
	}
	return keys
}

// bruteForce enumerates every index subset of the open tiles summing to
// target.
func bruteForce(target int, ts []tiles.Tile) map[string]bool {
	open := tiles.OpenTiles(ts)
	var out [][]tiles.Tile
	for bits := 1; bits < 1<<len(open); bits++ {
		sum := 0
		var subset []tiles.Tile
		for i, t := range open {
			if bits&(1<<i) != 0 {
				sum += t.Value
				subset = append(subset, t)
			}
		}
		if sum == target {
			out = append(out, subset)
		}
	}
	return comboKeys(out)
}

func TestCombinationsMatchBruteForce(t *testing.T) {
	is := is.New(t)
	board := tiles.StandardBoard(12)
	total := tiles.SumOpen(board)
	for target := 1; target <= total; target++ {
		got := Combinations(target, board)
		for _, c := range got {
			sum := 0
			for _, tile := range c {
				sum += tile.Value
			}
			is.Equal(sum, target)
		}
		gotKeys := comboKeys(got)
		is.Equal(len(gotKeys), len(got)) // no duplicate subsets
		is.Equal(gotKeys, bruteForce(target, board))
	}
}

func TestCombinationsElevenOnFullBoard(t *testing.T) {
	is := is.New(t)
	board := tiles.StandardBoard(12)
	keys := comboKeys(Combinations(11, board))
	is.True(keys["[5 6]"])
	is.True(keys["[4 7]"])
	is.True(keys["[11]"])
	is.True(keys["[1 2 3 5]"])
}

func TestCombinationsDegenerateTargets(t *testing.T) {
	is := is.New(t)
	board := tiles.StandardBoard(12)
	is.Equal(len(Combinations(0, board)), 0)
	is.Equal(len(Combinations(-3, board)), 0)
	is.Equal(len(Combinations(13, nil)), 0)
}

func TestCombinationsIgnoreShutTiles(t *testing.T) {
	is := is.New(t)
	board := tiles.Shut(tiles.StandardBoard(6), []tiles.Tile{{ID: 3}})
	for _, c := range Combinations(7, board) {
		for _, tile := range c {
			is.True(tile.ID != 3)
		}
	}
	keys := comboKeys(Combinations(7, board))
	is.True(keys["[1 6]"])
	is.True(keys["[2 5]"])
	is.True(!keys["[3 4]"])
}

func TestCombinationsDistinguishDuplicateValues(t *testing.T) {
	is := is.New(t)
	// Two fives: same value, distinct tiles, distinct combinations.
	board := []tiles.Tile{
		{ID: 1, Value: 5, Open: true},
		{ID: 2, Value: 5, Open: true},
		{ID: 3, Value: 2, Open: true},
	}
	keys := comboKeys(Combinations(7, board))
	is.Equal(len(keys), 2)
	is.True(keys["[1 3]"])
	is.True(keys["[2 3]"])
}

func TestEnumerationOrderIsStable(t *testing.T) {
	is := is.New(t)
	// Input order must not affect output order: the generator sorts.
	board := tiles.StandardBoard(9)
	shuffled := []tiles.Tile{board[8], board[2], board[5], board[0],
		board[7], board[1], board[3], board[6], board[4]}
	a := Combinations(9, board)
	b := Combinations(9, shuffled)
	is.Equal(a, b)
	// First combination starts with the lowest value.
	is.Equal(a[0][0].Value, 1)
}

func TestHintedIDs(t *testing.T) {
	is := is.New(t)
	board := tiles.StandardBoard(6)
	hinted := HintedIDs(5, board)
	// 5 = {5}, {1,4}, {2,3}: every tile but 6 participates.
	is.Equal(len(hinted), 5)
	is.True(!hinted[6])
	is.Equal(len(HintedIDs(0, board)), 0)
}

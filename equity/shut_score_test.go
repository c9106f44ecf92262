package equity

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/markdias/shutbox/tiles"
)

func values(c []tiles.Tile) []int {
	out := make([]int, len(c))
	for i, t := range c {
		out[i] = t.Value
	}
	return out
}

func TestBestMoveSingleHighTile(t *testing.T) {
	is := is.New(t)
	// Roll total 6 on a fresh 6-board: {6} beats {1,2,3}, {1,5}, {2,4}
	// because it leaves the most distinct values open for future rolls.
	board := tiles.StandardBoard(6)
	best := BestMove(tiles.DoubleRoll(2, 4), board)
	is.Equal(values(best), []int{6})
}

func TestBestMoveBust(t *testing.T) {
	is := is.New(t)
	// Only {2,3} open; no combination pays 7.
	board := tiles.Shut(tiles.StandardBoard(6),
		[]tiles.Tile{{ID: 1}, {ID: 4}, {ID: 5}, {ID: 6}})
	is.Equal(len(BestMove(tiles.DoubleRoll(3, 4), board)), 0)
	is.Equal(len(BestMove(tiles.Roll{}, board)), 0)
}

func TestBestMoveDeterministic(t *testing.T) {
	is := is.New(t)
	board := tiles.StandardBoard(12)
	roll := tiles.DoubleRoll(5, 6)
	first := BestMove(roll, board)
	for i := 0; i < 5; i++ {
		is.Equal(BestMove(roll, board), first)
	}
}

func TestBestMovePrefersHighSingle(t *testing.T) {
	// Across a few rolls on a full board the recommendation is the
	// single tile matching the total, the fewest-tile clear.
	board := tiles.StandardBoard(12)
	for total := 2; total <= 12; total++ {
		first := total / 2
		best := BestMove(tiles.DoubleRoll(first, total-first), board)
		assert.Equal(t, []int{total}, values(best), "total %d", total)
	}
}

func TestEquityScore(t *testing.T) {
	is := is.New(t)
	board := tiles.StandardBoard(6)
	calc := ShutScoreCalculator{}
	// Shut {6}: 6*100 - 15*10 + 5 distinct values left open.
	is.Equal(calc.Equity([]tiles.Tile{board[5]}, board), float64(455))
	// Shut {1,2,3}: same sums, only 3 distinct values left.
	is.Equal(calc.Equity([]tiles.Tile{board[0], board[1], board[2]}, board), float64(453))
}

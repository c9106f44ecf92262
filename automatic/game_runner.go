// Package automatic plays complete solo shut-the-box games with the
// static best-move heuristic, for tuning and sanity-checking the
// engine. It owns the per-game turn loop, which is simulation plumbing;
// multi-player rounds and scoring modes live with the caller.
package automatic

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/markdias/shutbox/config"
	"github.com/markdias/shutbox/equity"
	"github.com/markdias/shutbox/stats"
	"github.com/markdias/shutbox/tiles"
	"github.com/markdias/shutbox/winprob"
)

// GameRunner drives self-play games for one board/policy setup.
type GameRunner struct {
	maxValue int
	policy   winprob.OneDiePolicy
	rng      *frand.RNG
}

// NewGameRunner instantiates a runner from the app config.
func NewGameRunner(cfg *config.Config) *GameRunner {
	return &GameRunner{
		maxValue: cfg.MaxTileValue,
		policy:   cfg.Policy(),
		rng:      frand.New(),
	}
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Shut      bool
	Remaining int // open-value sum at bust; 0 when shut
	Turns     int
}

// Summary aggregates self-play results.
type Summary struct {
	Games     int
	ShutCount int
	// Remaining tracks the bust score over all games, counting shut
	// games as 0.
	Remaining stats.Statistic
}

func (s *Summary) push(r GameResult) {
	s.Games++
	if r.Shut {
		s.ShutCount++
	}
	s.Remaining.Push(float64(r.Remaining))
}

// ShutRate is the fraction of games fully cleared.
func (s *Summary) ShutRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.ShutCount) / float64(s.Games)
}

func (s *Summary) String() string {
	rate := s.ShutRate()
	ci := stats.ProportionInterval(rate, s.Games, 95)
	return fmt.Sprintf("games %d; shut %.2f%% ± %.2f%%; mean remaining %.2f (σ %.2f)",
		s.Games, rate*100, ci*100, s.Remaining.Mean(), s.Remaining.Stdev())
}

// PlayGame plays one full game: roll, take the best move, repeat until
// the board is clear or no combination exists. A single die is rolled
// whenever the house rule permits it.
func (r *GameRunner) PlayGame() GameResult {
	board := tiles.StandardBoard(r.maxValue)
	res := GameResult{}
	for {
		open := tiles.OpenTiles(board)
		if len(open) == 0 {
			res.Shut = true
			return res
		}
		res.Turns++
		roll := r.rollDice(tiles.MaskOf(open))
		best := equity.BestMove(roll, open)
		if len(best) == 0 {
			res.Remaining = tiles.SumOpen(board)
			return res
		}
		board = tiles.Shut(board, best)
	}
}

func (r *GameRunner) rollDice(mask tiles.ValueMask) tiles.Roll {
	if r.policy.Permits(mask) {
		return tiles.SingleRoll(r.rng.Intn(6) + 1)
	}
	return tiles.DoubleRoll(r.rng.Intn(6)+1, r.rng.Intn(6)+1)
}

// Run plays n games, fanned out over the configured worker count, and
// returns the aggregate summary.
func Run(ctx context.Context, cfg *config.Config, n int) (*Summary, error) {
	workers := cfg.AutoplayWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	summary := &Summary{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		games := n / workers
		if w < n%workers {
			games++
		}
		g.Go(func() error {
			runner := NewGameRunner(cfg)
			for i := 0; i < games; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				result := runner.PlayGame()
				mu.Lock()
				summary.push(result)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("games", summary.Games).Float64("shut-rate", summary.ShutRate()).
		Msg("autoplay finished")
	return summary, nil
}

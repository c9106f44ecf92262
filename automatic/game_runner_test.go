package automatic

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/markdias/shutbox/config"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxTileValue:    9,
		OneDiePolicy:    "max-open-six",
		AutoplayGames:   100,
		AutoplayWorkers: 2,
	}
}

func TestPlayGameTerminates(t *testing.T) {
	is := is.New(t)
	runner := NewGameRunner(testConfig())
	for i := 0; i < 50; i++ {
		res := runner.PlayGame()
		is.True(res.Turns > 0)
		if res.Shut {
			is.Equal(res.Remaining, 0)
		} else {
			// A bust leaves between 1 and the whole board open.
			is.True(res.Remaining >= 1)
			is.True(res.Remaining <= 45)
		}
	}
}

func TestRunAggregates(t *testing.T) {
	is := is.New(t)
	summary, err := Run(context.Background(), testConfig(), 200)
	is.NoErr(err)
	is.Equal(summary.Games, 200)
	is.True(summary.ShutCount >= 0)
	is.True(summary.ShutCount <= 200)
	rate := summary.ShutRate()
	is.True(rate >= 0 && rate <= 1)
	is.True(summary.Remaining.Mean() < 45)
	is.Equal(summary.Remaining.Iterations(), 200)
}

func TestRunHonorsCancel(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testConfig(), 10000)
	is.True(err != nil)
}

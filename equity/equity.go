// Package equity estimates win probabilities by running many Monte Carlo
// trials against a single holdem game and tallying the winners.
package equity

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/equity/cards"
	"github.com/lazharichir/equity/holdem"
)

// ErrNoTrials is returned when an estimate is requested with fewer than one trial
var ErrNoTrials = errors.New("trials must be at least 1")

// Report holds the outcome of an equity estimation run
type Report struct {
	RunID   string
	Hands   []cards.Stack
	Board   cards.Stack
	Trials  int
	Wins    []int
	Equity  []float64
	Elapsed time.Duration
}

// Estimate runs the given number of simulate/reset trials for one fixed
// assignment of hands and optional board, and reports each hand's share of
// wins. A nil rng falls back to a clock-seeded generator; passing a seeded
// generator makes the run reproducible.
func Estimate(hs []cards.Stack, board cards.Stack, trials int, rng *rand.Rand) (*Report, error) {
	if trials < 1 {
		return nil, ErrNoTrials
	}

	game, err := holdem.NewWithBoard(hs, board, rng)
	if err != nil {
		return nil, err
	}

	started := time.Now()

	wins := make([]int, len(hs))
	for i := 0; i < trials; i++ {
		winner, _, err := game.Simulate()
		if err != nil {
			return nil, err
		}
		wins[winner]++
		game.Reset()
	}

	shares := make([]float64, len(hs))
	for i, w := range wins {
		shares[i] = float64(w) / float64(trials)
	}

	owned := make([]cards.Stack, len(hs))
	for i, hand := range hs {
		owned[i] = hand.Clone()
	}

	return &Report{
		RunID:   uuid.NewString(),
		Hands:   owned,
		Board:   board.Clone(),
		Trials:  trials,
		Wins:    wins,
		Equity:  shares,
		Elapsed: time.Since(started),
	}, nil
}

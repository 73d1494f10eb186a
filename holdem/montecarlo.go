// Package holdem implements a Monte Carlo trial engine for Texas hold'em
// equity estimation. A game is constructed once per equity question (a fixed
// set of two-card hands and an optional partial board) and then cycles
// through many Simulate/Reset trials, each one completing the board with
// randomly drawn cards and reporting which hand won.
package holdem

import (
	"math/rand"
	"time"

	"github.com/lazharichir/equity/cards"
	"github.com/lazharichir/equity/hands"
)

const (
	holeCardCount = 2
	boardSize     = 5
)

// EvaluateFunc reduces a hand's cards to a totally ordered rank
type EvaluateFunc func(cards.Stack) (hands.Rank, error)

// MonteCarloGame runs repeated hold'em trials against one fixed assignment
// of hole cards and community cards.
//
// The pool holds every card not assigned to a hand or the board at
// construction; its membership never changes, only its order. Once a card is
// given to a hand or the board it is unavailable to every trial for the life
// of the game. A game is not safe for concurrent use; independent games are
// fully isolated from each other.
type MonteCarloGame struct {
	pool         cards.Stack
	board        cards.Stack
	hands        []cards.Stack
	offset       int
	needsShuffle bool
	rng          *rand.Rand
	evaluate     EvaluateFunc
}

// New creates a game from hands alone, with an empty board.
// Each hand must hold exactly two cards, and no card may appear twice.
// A nil rng falls back to a clock-seeded generator.
func New(hs []cards.Stack, rng *rand.Rand) (*MonteCarloGame, error) {
	return NewWithBoard(hs, nil, rng)
}

// NewWithBoard creates a game from hands and up to five community cards.
// Duplicate detection applies jointly across hands and board. On any
// validation error no game is produced.
func NewWithBoard(hs []cards.Stack, board cards.Stack, rng *rand.Rand) (*MonteCarloGame, error) {
	if len(board) > boardSize {
		return nil, ErrBoardTooLarge
	}

	deck := cards.NewDeck52()

	for _, hand := range hs {
		if len(hand) != holeCardCount {
			return nil, ErrInvalidHandSize
		}
		for _, card := range hand {
			if !deck.Remove(card) {
				return nil, &DuplicateCardError{Card: card}
			}
		}
	}

	for _, card := range board {
		if !deck.Remove(card) {
			return nil, &DuplicateCardError{Card: card}
		}
	}

	if len(deck) < boardSize-len(board) {
		return nil, ErrNotEnoughCards
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// The game owns its hands and board outright; callers keep their slices.
	owned := make([]cards.Stack, len(hs))
	for i, hand := range hs {
		owned[i] = hand.Clone()
	}

	return &MonteCarloGame{
		pool:         deck,
		board:        board.Clone(),
		hands:        owned,
		needsShuffle: true,
		rng:          rng,
		evaluate:     hands.RankSeven,
	}, nil
}

// SetEvaluator replaces the default seven-card evaluator. Useful for tests
// and for callers bringing their own ranking scheme.
func (g *MonteCarloGame) SetEvaluator(fn EvaluateFunc) {
	if fn != nil {
		g.evaluate = fn
	}
}

// Simulate runs one trial: it completes the board to five cards, gives every
// hand the board plus the drawn cards, and returns the index and rank of the
// winning hand. When several hands tie for the best rank, the hand with the
// greatest index wins. Callers depend on that tie-break; do not change it.
func (g *MonteCarloGame) Simulate() (int, hands.Rank, error) {
	if len(g.hands) == 0 {
		return 0, 0, ErrNoHands
	}

	for i := range g.hands {
		g.hands[i].AddCards(g.board...)
	}

	needed := boardSize - len(g.board)

	g.shuffleIfNeeded()

	for _, card := range g.pool[g.offset : g.offset+needed] {
		for i := range g.hands {
			g.hands[i].AddCard(card)
		}
	}
	g.offset += needed

	winner := -1
	var best hands.Rank
	for i, hand := range g.hands {
		rank, err := g.evaluate(hand)
		if err != nil {
			return 0, 0, err
		}
		if winner < 0 || rank >= best {
			winner = i
			best = rank
		}
	}
	if winner < 0 {
		return 0, 0, ErrRankingUnavailable
	}

	return winner, best, nil
}

// Reset truncates every hand back to its two hole cards. The pool and its
// cursor are left alone, so the next trial keeps consuming undealt cards.
func (g *MonteCarloGame) Reset() {
	for i := range g.hands {
		g.hands[i].Truncate(holeCardCount)
	}
}

// shuffleIfNeeded reshuffles the whole pool in place whenever it cannot
// supply five contiguous unused cards from the cursor onwards. The check is
// always against five cards regardless of how many this trial draws, so
// cursor behavior is identical for every board size; partial boards may
// reshuffle one trial early.
func (g *MonteCarloGame) shuffleIfNeeded() {
	if g.needsShuffle || g.offset+boardSize > len(g.pool) {
		cards.Shuffle(g.rng, g.pool)
		g.offset = 0
		g.needsShuffle = false
	}
}

// HandCount returns the number of hands in the game
func (g *MonteCarloGame) HandCount() int {
	return len(g.hands)
}

// Hand returns a copy of the cards currently held by the hand at index i:
// two cards between trials, seven cards after a Simulate call
func (g *MonteCarloGame) Hand(i int) cards.Stack {
	return g.hands[i].Clone()
}

// Board returns a copy of the community cards fixed at construction
func (g *MonteCarloGame) Board() cards.Stack {
	return g.board.Clone()
}

// PoolSize returns the number of cards available for drawing
func (g *MonteCarloGame) PoolSize() int {
	return len(g.pool)
}

package hands

import (
	"fmt"

	"github.com/lazharichir/equity/cards"
	"github.com/paulhankin/poker"
)

// Rank represents the strength of a poker hand as a totally ordered value.
// Higher ranks beat lower ranks. The numeric value is the raw evaluator
// score and carries no further meaning to callers.
type Rank int16

// Category represents the class of a poker hand (pair, flush, etc.)
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of the hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

var suitMap = map[cards.Suit]poker.Suit{
	cards.Clubs:    poker.Club,
	cards.Diamonds: poker.Diamond,
	cards.Hearts:   poker.Heart,
	cards.Spades:   poker.Spade,
}

// The evaluator counts aces as 1 and kings as 13
var valueMap = map[cards.Value]poker.Rank{
	cards.Ace:   1,
	cards.Two:   2,
	cards.Three: 3,
	cards.Four:  4,
	cards.Five:  5,
	cards.Six:   6,
	cards.Seven: 7,
	cards.Eight: 8,
	cards.Nine:  9,
	cards.Ten:   10,
	cards.Jack:  11,
	cards.Queen: 12,
	cards.King:  13,
}

func toPokerCard(c cards.Card) (poker.Card, error) {
	var zero poker.Card

	suit, ok := suitMap[c.Suit]
	if !ok {
		return zero, fmt.Errorf("card %q has no evaluable suit", c)
	}

	value, ok := valueMap[c.Value]
	if !ok {
		return zero, fmt.Errorf("card %q has no evaluable value", c)
	}

	return poker.MakeCard(suit, value)
}

func toPokerCards(stack cards.Stack) ([]poker.Card, error) {
	converted := make([]poker.Card, len(stack))
	for i, c := range stack {
		pc, err := toPokerCard(c)
		if err != nil {
			return nil, err
		}
		converted[i] = pc
	}
	return converted, nil
}

// RankSeven evaluates a seven-card hand (two hole cards plus a full board)
// and returns its rank
func RankSeven(stack cards.Stack) (Rank, error) {
	if len(stack) != 7 {
		return 0, fmt.Errorf("expected 7 cards to rank, got %d", len(stack))
	}

	converted, err := toPokerCards(stack)
	if err != nil {
		return 0, err
	}

	var hand [7]poker.Card
	copy(hand[:], converted)

	return Rank(poker.Eval7(&hand)), nil
}

// RankFive evaluates a five-card hand and returns its rank
func RankFive(stack cards.Stack) (Rank, error) {
	if len(stack) != 5 {
		return 0, fmt.Errorf("expected 5 cards to rank, got %d", len(stack))
	}

	converted, err := toPokerCards(stack)
	if err != nil {
		return 0, err
	}

	var hand [5]poker.Card
	copy(hand[:], converted)

	return Rank(poker.Eval5(&hand)), nil
}

// Describe returns a human-readable description of the best hand
// that can be made from the given cards
func Describe(stack cards.Stack) (string, error) {
	converted, err := toPokerCards(stack)
	if err != nil {
		return "", err
	}
	return poker.Describe(converted)
}

// categoryFloor maps each category to the rank of its weakest possible
// five-card hand. Evaluator scores respect category ordering, so any rank at
// or above a floor belongs at least to that category.
var categoryFloor = map[Category]Rank{}

func init() {
	minima := map[Category]string{
		OnePair:       "2s2h3d4c5s",
		TwoPair:       "2s2h3d3c4s",
		ThreeOfAKind:  "2s2h2d3c4s",
		Straight:      "As2h3d4c5s",
		Flush:         "2s3s4s5s7s",
		FullHouse:     "2s2h2d3c3h",
		FourOfAKind:   "2s2h2d2c3s",
		StraightFlush: "As2s3s4s5s",
		RoyalFlush:    "10sJsQsKsAs",
	}

	for category, shorthand := range minima {
		stack, err := cards.StackFromString(shorthand)
		if err != nil {
			panic(err)
		}
		rank, err := RankFive(stack)
		if err != nil {
			panic(err)
		}
		categoryFloor[category] = rank
	}
}

// Category returns the hand class this rank belongs to
func (r Rank) Category() Category {
	category := HighCard
	for c := OnePair; c <= RoyalFlush; c++ {
		if r >= categoryFloor[c] {
			category = c
		}
	}
	return category
}

// String returns the display name of the rank's hand category
func (r Rank) String() string {
	return r.Category().String()
}

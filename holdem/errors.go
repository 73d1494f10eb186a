package holdem

import (
	"errors"
	"fmt"

	"github.com/lazharichir/equity/cards"
)

var (
	// ErrInvalidHandSize is returned when a hand does not hold exactly two hole cards
	ErrInvalidHandSize = errors.New("hand does not have exactly 2 cards")

	// ErrBoardTooLarge is returned when a board holds more than five cards
	ErrBoardTooLarge = errors.New("board has more than 5 cards")

	// ErrNotEnoughCards is returned when so many hands are supplied that the
	// remaining deck can never complete a five-card board
	ErrNotEnoughCards = errors.New("not enough cards left to complete the board")

	// ErrNoHands is returned when a trial is run without any hands
	ErrNoHands = errors.New("there are no hands")

	// ErrRankingUnavailable is returned when no winner could be selected.
	// It is unreachable while the ErrNoHands guard holds; kept so a broken
	// invariant surfaces as an error instead of a bogus result.
	ErrRankingUnavailable = errors.New("unable to determine best rank")
)

// DuplicateCardError reports a card assigned more than once across the
// hands and board supplied at construction
type DuplicateCardError struct {
	Card cards.Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("card %s was already removed from the deck", e.Card)
}

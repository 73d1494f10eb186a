package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_AddCard(t *testing.T) {
	stack := NewStack()
	card := Card{Suit: Clubs, Value: Ace}

	stack.AddCard(card)

	assert.Len(t, stack, 1, "Expected stack to have 1 card")
	assert.Equal(t, card, stack[0], "Expected card to be card")
}

func TestStack_AddCards(t *testing.T) {
	stack := NewStack()
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}

	stack.AddCards(card1, card2)

	assert.Len(t, stack, 2, "Expected stack to have 2 cards")
	assert.Equal(t, card1, stack[0], "Expected first card to be card1")
	assert.Equal(t, card2, stack[1], "Expected second card to be card2")
}

func TestStack_Remove(t *testing.T) {
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}
	card3 := Card{Suit: Hearts, Value: King}
	stack := NewStack(card1, card2, card3)

	removed := stack.Remove(card2)

	assert.True(t, removed, "Expected card2 to be removed")
	assert.Len(t, stack, 2, "Expected stack to have 2 cards remaining")
	assert.False(t, stack.Contains(card2), "Expected card2 to be gone")

	removed = stack.Remove(card2)
	assert.False(t, removed, "Expected second removal of card2 to fail")
	assert.Len(t, stack, 2, "Expected stack to be unchanged after failed removal")
}

func TestStack_Truncate(t *testing.T) {
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}
	card3 := Card{Suit: Hearts, Value: King}
	stack := NewStack(card1, card2, card3)

	stack.Truncate(2)

	assert.Len(t, stack, 2, "Expected stack to have 2 cards after truncation")
	assert.Equal(t, card1, stack[0], "Expected first card to survive truncation")
	assert.Equal(t, card2, stack[1], "Expected second card to survive truncation")

	stack.Truncate(5)
	assert.Len(t, stack, 2, "Expected truncation to a larger size to be a no-op")
}

func TestStack_Clone(t *testing.T) {
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}
	stack := NewStack(card1, card2)

	clone := stack.Clone()
	clone[0] = Card{Suit: Hearts, Value: King}

	assert.Equal(t, card1, stack[0], "Expected original stack to be unaffected by clone mutation")
}

func TestStack_String(t *testing.T) {
	stack := NewStack(Card{Suit: Diamonds, Value: Ace}, Card{Suit: Spades, Value: Ten})
	assert.Equal(t, "A♦ 10♠", stack.String())
}

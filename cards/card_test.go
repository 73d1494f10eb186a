package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades Unicode", "A♠", Card{Suit: Spades, Value: Ace}, false},
		{"Ace of Spades lowercase", "As", Card{Suit: Spades, Value: Ace}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Value: Ace}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Suit: Hearts, Value: Ten}, false},
		{"Ten of Hearts lowercase", "10h", Card{Suit: Hearts, Value: Ten}, false},
		{"Ten of Hearts shorthand T", "Th", Card{Suit: Hearts, Value: Ten}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Suit: Diamonds, Value: Queen}, false},
		{"Queen of Diamonds lowercase", "Qd", Card{Suit: Diamonds, Value: Queen}, false},
		{"Two of Clubs Unicode", "2♣", Card{Suit: Clubs, Value: Two}, false},
		{"Two of Clubs uppercase", "2C", Card{Suit: Clubs, Value: Two}, false},

		// All values for a single suit
		{"King of Hearts", "Kh", Card{Suit: Hearts, Value: King}, false},
		{"Jack of Hearts", "Jh", Card{Suit: Hearts, Value: Jack}, false},
		{"Nine of Hearts", "9h", Card{Suit: Hearts, Value: Nine}, false},
		{"Eight of Hearts", "8h", Card{Suit: Hearts, Value: Eight}, false},
		{"Seven of Hearts", "7h", Card{Suit: Hearts, Value: Seven}, false},
		{"Six of Hearts", "6h", Card{Suit: Hearts, Value: Six}, false},
		{"Five of Hearts", "5h", Card{Suit: Hearts, Value: Five}, false},
		{"Four of Hearts", "4h", Card{Suit: Hearts, Value: Four}, false},
		{"Three of Hearts", "3h", Card{Suit: Hearts, Value: Three}, false},

		// Unicode handling edge cases
		{"Proper encoding Spades", "A♠", Card{Suit: Spades, Value: Ace}, false},
		{"Proper encoding Hearts", "10♥", Card{Suit: Hearts, Value: Ten}, false},

		// Handling of spaces and unusual input format
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Input with mixed case", "aS", Card{}, true},

		// Invalid inputs
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Wildcard", "W", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid value", "11S", Card{}, true},
		{"Invalid format", "XX", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Special characters", "A$", Card{}, true},
		{"Number too large", "100S", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestStackFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Stack
		wantErr bool
	}{
		{"Pocket aces", "AdAh", Stack{{Diamonds, Ace}, {Hearts, Ace}}, false},
		{"Ten shorthand", "10sKd", Stack{{Spades, Ten}, {Diamonds, King}}, false},
		{"Single card", "2c", Stack{{Clubs, Two}}, false},
		{"Flop", "6sKdQh", Stack{{Spades, Six}, {Diamonds, King}, {Hearts, Queen}}, false},
		{"Unicode suits", "A♠2♣", Stack{{Spades, Ace}, {Clubs, Two}}, false},
		{"Empty input", "", nil, true},
		{"Trailing garbage", "AdA", nil, true},
		{"Bad value", "1d", nil, true},
		{"No suit", "AK", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StackFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "StackFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "StackFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "StackFromString(%q) should return the correct stack", tt.input)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	card := Card{Suit: Diamonds, Value: Ace}
	require.Equal(t, "A♦", card.String())
}

package cards

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Stack represents an ordered collection of cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// StackFromString parses a run of concatenated card shorthands
// e.g., "AdAh" -> [A♦ A♥], "10sKd" -> [10♠ K♦]
func StackFromString(s string) (Stack, error) {
	var stack Stack

	start := 0
	for i, r := range s {
		switch r {
		case '♠', '♥', '♦', '♣', 's', 'S', 'h', 'H', 'd', 'D', 'c', 'C':
			end := i + utf8.RuneLen(r)
			card, err := CardFromString(s[start:end])
			if err != nil {
				return nil, err
			}
			stack = append(stack, card)
			start = end
		}
	}

	if start != len(s) || len(stack) == 0 {
		return nil, fmt.Errorf("invalid cards shorthand: %q", s)
	}

	return stack, nil
}

// AddCard appends a card to the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards appends several cards to the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// Remove removes the first occurrence of a card from the stack
// and reports whether the card was present
func (s *Stack) Remove(card Card) bool {
	for i, c := range *s {
		if c.Equals(card) {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

// Truncate shrinks the stack to its first n cards
func (s *Stack) Truncate(n int) {
	if n < len(*s) {
		*s = (*s)[:n]
	}
}

// Contains checks if the stack holds the given card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the stack
func (s Stack) Clone() Stack {
	clone := make(Stack, len(s))
	copy(clone, s)
	return clone
}

// String returns the string representation of the stack
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

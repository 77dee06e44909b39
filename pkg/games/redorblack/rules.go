package redorblack

import (
	"fmt"
	"strings"

	"github.com/cardroom/playingcards/pkg/cards"
)

// Direction is a higher/lower guess about the next card's rank
type Direction int

const (
	Higher Direction = iota
	Lower
)

// String returns the guess keyword for the direction
func (d Direction) String() string {
	if d == Lower {
		return "lower"
	}
	return "higher"
}

// Position is an inside/outside guess about the next card's rank
// relative to the two cards already on the table
type Position int

const (
	Inside Position = iota
	Outside
)

// String returns the guess keyword for the position
func (p Position) String() string {
	if p == Outside {
		return "outside"
	}
	return "inside"
}

// ParseColourGuess maps "red" or "black" (case-insensitive) to a colour
func ParseColourGuess(guess string) (cards.Colour, error) {
	switch normalize(guess) {
	case "red":
		return cards.Red, nil
	case "black":
		return cards.Black, nil
	}
	return 0, fmt.Errorf("%w: %q (want red or black)", ErrUnknownGuess, guess)
}

// ParseDirectionGuess maps "higher" or "lower" to a direction
func ParseDirectionGuess(guess string) (Direction, error) {
	switch normalize(guess) {
	case "higher":
		return Higher, nil
	case "lower":
		return Lower, nil
	}
	return 0, fmt.Errorf("%w: %q (want higher or lower)", ErrUnknownGuess, guess)
}

// ParsePositionGuess maps "inside" or "outside" to a position
func ParsePositionGuess(guess string) (Position, error) {
	switch normalize(guess) {
	case "inside":
		return Inside, nil
	case "outside":
		return Outside, nil
	}
	return 0, fmt.Errorf("%w: %q (want inside or outside)", ErrUnknownGuess, guess)
}

// ParseSuitGuess maps a suit name ("clubs", "diamonds", "hearts",
// "spades", case-insensitive) to a suit
func ParseSuitGuess(guess string) (cards.Suit, error) {
	want := normalize(guess)
	for _, suit := range cards.Suits() {
		if strings.ToLower(suit.String()) == want {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownGuess, guess, strings.Join(SuitChoices(), ", "))
}

// SuitChoices returns the lowercase suit names in their fixed
// enumeration order, for building prompts
func SuitChoices() []string {
	choices := make([]string, 0, 4)
	for _, suit := range cards.Suits() {
		choices = append(choices, strings.ToLower(suit.String()))
	}
	return choices
}

func normalize(guess string) string {
	return strings.ToLower(strings.TrimSpace(guess))
}

// EvaluateColour reports whether the card shows the guessed colour
func EvaluateColour(card cards.Card, guess cards.Colour) bool {
	return card.Colour() == guess
}

// EvaluateHigherLower reports whether next relates to prev as guessed.
// Ranks are compared suit-blind; an equal rank loses either way.
func EvaluateHigherLower(prev, next cards.Card, guess Direction) bool {
	cmp := next.CompareRank(prev)
	if guess == Higher {
		return cmp > 0
	}
	return cmp < 0
}

// EvaluateInsideOutside reports whether third falls inside or outside
// the rank range spanned by the first two cards, as guessed. Bounds
// are inclusive, so landing on either bound counts as inside.
func EvaluateInsideOutside(first, second, third cards.Card, guess Position) bool {
	low, high := first.Rank, second.Rank
	if low > high {
		low, high = high, low
	}
	inside := third.Rank >= low && third.Rank <= high
	if guess == Inside {
		return inside
	}
	return !inside
}

// EvaluateSuit reports whether the card shows the guessed suit
func EvaluateSuit(card cards.Card, guess cards.Suit) bool {
	return card.Suit == guess
}

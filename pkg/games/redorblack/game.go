// Package redorblack implements the classic four-round Red or Black
// drinking game on top of the cards package.
//
// A game walks through four guesses, drawing one card per round:
// the colour of the first card, whether the second ranks higher or
// lower than the first, whether the third lands inside or outside the
// first two, and finally the suit of the fourth.
package redorblack

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardroom/playingcards/pkg/cards"
)

var (
	ErrGameFinished   = errors.New("game already finished")
	ErrGameInProgress = errors.New("game still in progress")
	ErrWrongRound     = errors.New("guess does not match the current round")
	ErrUnknownGuess   = errors.New("unknown guess")
)

// Round identifies a stage of a Red or Black game
type Round string

const (
	RoundColour        Round = "COLOUR"
	RoundHigherLower   Round = "HIGHER_LOWER"
	RoundInsideOutside Round = "INSIDE_OUTSIDE"
	RoundSuit          Round = "SUIT"
	RoundDone          Round = "DONE"
)

// Dealer supplies cards to a game. *cards.Deck satisfies it.
type Dealer interface {
	TakeCard() (cards.Card, error)
}

// Outcome records one resolved round
type Outcome struct {
	Round Round
	Card  cards.Card
	Guess string
	Won   bool
}

// Result summarizes a finished game
type Result struct {
	GameID      string
	Wins        int
	Outcomes    []Outcome
	CompletedAt time.Time
}

// Game tracks one play-through of the four rounds. Rounds must be
// played in order; a failed parse or an exhausted dealer leaves the
// game on the current round so the guess can be retried.
type Game struct {
	ID       string
	dealer   Dealer
	round    Round
	drawn    []cards.Card
	outcomes []Outcome
}

// NewGame creates a game that draws from the given dealer
func NewGame(dealer Dealer) *Game {
	return &Game{
		ID:     uuid.New().String(),
		dealer: dealer,
		round:  RoundColour,
	}
}

// Round returns the round awaiting a guess
func (g *Game) Round() Round {
	return g.round
}

// Finished reports whether all four rounds have been played
func (g *Game) Finished() bool {
	return g.round == RoundDone
}

// Outcomes returns a copy of the resolved rounds so far
func (g *Game) Outcomes() []Outcome {
	outcomes := make([]Outcome, len(g.outcomes))
	copy(outcomes, g.outcomes)
	return outcomes
}

// GuessColour plays round one: the colour of the first card
func (g *Game) GuessColour(guess string) (Outcome, error) {
	if err := g.expectRound(RoundColour); err != nil {
		return Outcome{}, err
	}
	colour, err := ParseColourGuess(guess)
	if err != nil {
		return Outcome{}, err
	}
	card, err := g.dealer.TakeCard()
	if err != nil {
		return Outcome{}, fmt.Errorf("dealing colour round: %w", err)
	}
	return g.record(card, guess, EvaluateColour(card, colour), RoundHigherLower), nil
}

// GuessHigherLower plays round two: the second card's rank against the
// first card's
func (g *Game) GuessHigherLower(guess string) (Outcome, error) {
	if err := g.expectRound(RoundHigherLower); err != nil {
		return Outcome{}, err
	}
	direction, err := ParseDirectionGuess(guess)
	if err != nil {
		return Outcome{}, err
	}
	card, err := g.dealer.TakeCard()
	if err != nil {
		return Outcome{}, fmt.Errorf("dealing higher/lower round: %w", err)
	}
	won := EvaluateHigherLower(g.drawn[0], card, direction)
	return g.record(card, guess, won, RoundInsideOutside), nil
}

// GuessInsideOutside plays round three: the third card's rank against
// the inclusive range spanned by the first two cards
func (g *Game) GuessInsideOutside(guess string) (Outcome, error) {
	if err := g.expectRound(RoundInsideOutside); err != nil {
		return Outcome{}, err
	}
	position, err := ParsePositionGuess(guess)
	if err != nil {
		return Outcome{}, err
	}
	card, err := g.dealer.TakeCard()
	if err != nil {
		return Outcome{}, fmt.Errorf("dealing inside/outside round: %w", err)
	}
	won := EvaluateInsideOutside(g.drawn[0], g.drawn[1], card, position)
	return g.record(card, guess, won, RoundSuit), nil
}

// GuessSuit plays round four: the suit of the fourth card
func (g *Game) GuessSuit(guess string) (Outcome, error) {
	if err := g.expectRound(RoundSuit); err != nil {
		return Outcome{}, err
	}
	suit, err := ParseSuitGuess(guess)
	if err != nil {
		return Outcome{}, err
	}
	card, err := g.dealer.TakeCard()
	if err != nil {
		return Outcome{}, fmt.Errorf("dealing suit round: %w", err)
	}
	return g.record(card, guess, EvaluateSuit(card, suit), RoundDone), nil
}

// Result returns the summary of a finished game
func (g *Game) Result() (*Result, error) {
	if !g.Finished() {
		return nil, ErrGameInProgress
	}
	wins := 0
	for _, outcome := range g.outcomes {
		if outcome.Won {
			wins++
		}
	}
	return &Result{
		GameID:      g.ID,
		Wins:        wins,
		Outcomes:    g.Outcomes(),
		CompletedAt: time.Now().UTC(),
	}, nil
}

func (g *Game) record(card cards.Card, guess string, won bool, next Round) Outcome {
	outcome := Outcome{Round: g.round, Card: card, Guess: guess, Won: won}
	g.outcomes = append(g.outcomes, outcome)
	g.drawn = append(g.drawn, card)
	g.round = next
	return outcome
}

func (g *Game) expectRound(want Round) error {
	if g.round == RoundDone {
		return ErrGameFinished
	}
	if g.round != want {
		return fmt.Errorf("%w: game is on the %s round", ErrWrongRound, g.round)
	}
	return nil
}

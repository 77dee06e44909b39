package redorblack

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cardroom/playingcards/pkg/cards"
)

type GameTestSuite struct {
	suite.Suite
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func (s *GameTestSuite) TestFullWinningGame() {
	// Setup: fixed card sequence dealt by the mock
	dealer := new(MockDealer)
	dealer.On("TakeCard").Return(cards.Card{Rank: cards.Queen, Suit: cards.Hearts}, nil).Once()
	dealer.On("TakeCard").Return(cards.Card{Rank: cards.Three, Suit: cards.Clubs}, nil).Once()
	dealer.On("TakeCard").Return(cards.Card{Rank: cards.Seven, Suit: cards.Diamonds}, nil).Once()
	dealer.On("TakeCard").Return(cards.Card{Rank: cards.Ace, Suit: cards.Spades}, nil).Once()

	game := NewGame(dealer)
	s.NotEmpty(game.ID, "Game should get an ID")
	s.Equal(RoundColour, game.Round())

	// Round 1: Queen of Hearts is red
	outcome, err := game.GuessColour("red")
	s.NoError(err)
	s.True(outcome.Won, "Red guess should win on a heart")
	s.Equal(RoundHigherLower, game.Round())

	// Round 2: Three is lower than Queen
	outcome, err = game.GuessHigherLower("lower")
	s.NoError(err)
	s.True(outcome.Won, "Lower guess should win when rank falls")

	// Round 3: Seven sits between Three and Queen
	outcome, err = game.GuessInsideOutside("inside")
	s.NoError(err)
	s.True(outcome.Won, "Inside guess should win within the bounds")

	// Round 4: Ace of Spades
	outcome, err = game.GuessSuit("spades")
	s.NoError(err)
	s.True(outcome.Won, "Suit guess should win on a match")

	s.True(game.Finished(), "Game should be finished after four rounds")

	result, err := game.Result()
	s.NoError(err)
	s.Equal(game.ID, result.GameID)
	s.Equal(4, result.Wins, "All four rounds were won")
	s.Len(result.Outcomes, 4)
	s.False(result.CompletedAt.IsZero(), "Result should be timestamped")
	dealer.AssertExpectations(s.T())
}

func (s *GameTestSuite) TestLosingGuessesAreRecorded() {
	dealer := new(MockDealer)
	dealer.On("TakeCard").Return(cards.Card{Rank: cards.Two, Suit: cards.Clubs}, nil).Once()
	dealer.On("TakeCard").Return(cards.Card{Rank: cards.Two, Suit: cards.Spades}, nil).Once()

	game := NewGame(dealer)

	// Two of Clubs is black
	outcome, err := game.GuessColour("red")
	s.NoError(err)
	s.False(outcome.Won, "Red guess should lose on a club")

	// Equal rank loses either way
	outcome, err = game.GuessHigherLower("higher")
	s.NoError(err)
	s.False(outcome.Won, "Equal rank should lose a higher guess")

	outcomes := game.Outcomes()
	s.Len(outcomes, 2)
	s.Equal(RoundColour, outcomes[0].Round)
	s.Equal("red", outcomes[0].Guess)
	s.False(outcomes[0].Won)
}

func (s *GameTestSuite) TestRoundsMustBePlayedInOrder() {
	dealer := new(MockDealer)
	game := NewGame(dealer)

	_, err := game.GuessHigherLower("higher")
	s.ErrorIs(err, ErrWrongRound, "Playing round two first should fail")

	_, err = game.GuessSuit("hearts")
	s.ErrorIs(err, ErrWrongRound, "Playing round four first should fail")

	s.Equal(RoundColour, game.Round(), "Failed guesses should not advance the game")
	dealer.AssertNotCalled(s.T(), "TakeCard")
}

func (s *GameTestSuite) TestGuessAfterGameFinished() {
	dealer := new(MockDealer)
	for _, card := range []cards.Card{
		{Rank: cards.Queen, Suit: cards.Hearts},
		{Rank: cards.Three, Suit: cards.Clubs},
		{Rank: cards.Seven, Suit: cards.Diamonds},
		{Rank: cards.Ace, Suit: cards.Spades},
	} {
		dealer.On("TakeCard").Return(card, nil).Once()
	}

	game := NewGame(dealer)
	_, _ = game.GuessColour("red")
	_, _ = game.GuessHigherLower("lower")
	_, _ = game.GuessInsideOutside("inside")
	_, _ = game.GuessSuit("spades")

	_, err := game.GuessColour("black")
	s.ErrorIs(err, ErrGameFinished, "Guessing after the last round should fail")
}

func (s *GameTestSuite) TestUnknownGuessDoesNotDraw() {
	dealer := new(MockDealer)
	game := NewGame(dealer)

	_, err := game.GuessColour("blue")
	s.ErrorIs(err, ErrUnknownGuess, "Unparseable guess should fail")
	s.Equal(RoundColour, game.Round(), "Failed parse should leave the round open")
	dealer.AssertNotCalled(s.T(), "TakeCard")
}

func (s *GameTestSuite) TestEmptyDealerSurfacesError() {
	dealer := new(MockDealer)
	dealer.On("TakeCard").Return(cards.Card{}, cards.NewCardError(cards.ErrEmptyDeck, "no cards remaining in the deck"))

	game := NewGame(dealer)
	_, err := game.GuessColour("red")

	s.Error(err)
	s.True(cards.IsCardError(err, cards.ErrEmptyDeck), "Deck exhaustion should surface the EMPTY_DECK error")
	s.Equal(RoundColour, game.Round(), "Failed draw should leave the round open")
}

func (s *GameTestSuite) TestResultBeforeFinish() {
	game := NewGame(new(MockDealer))

	_, err := game.Result()
	s.ErrorIs(err, ErrGameInProgress, "Result should not be available mid-game")
}

func (s *GameTestSuite) TestGameAgainstRealDeck() {
	// The deck itself satisfies Dealer; four rounds consume four cards
	deck, err := cards.New()
	s.NoError(err)

	game := NewGame(deck)
	_, err = game.GuessColour("black")
	s.NoError(err)
	_, err = game.GuessHigherLower("higher")
	s.NoError(err)
	_, err = game.GuessInsideOutside("inside")
	s.NoError(err)
	_, err = game.GuessSuit("clubs")
	s.NoError(err)

	s.True(game.Finished())
	s.Equal(48, deck.Remaining(), "Four rounds should consume four cards")
}

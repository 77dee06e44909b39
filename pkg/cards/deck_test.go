package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeck() {
	// Execute
	deck, err := New()

	// Assert
	s.NoError(err)
	s.Equal(52, deck.Remaining(), "Deck should have 52 cards")
	s.False(deck.Empty(), "Fresh deck should not be empty")

	// Verify every combination appears exactly once
	counts := make(map[Card]int)
	for !deck.Empty() {
		card, err := deck.TakeCard()
		s.NoError(err)
		counts[card]++
	}
	s.Len(counts, 52, "Deck should contain 52 distinct cards")
	for card, count := range counts {
		s.Equal(1, count, "Card %v should appear exactly once", card)
	}
}

func (s *DeckTestSuite) TestCanonicalOrder() {
	// Suit-major in Suits() order, ranks ascending within each suit
	deck, err := New()
	s.NoError(err)

	var drawn []Card
	for !deck.Empty() {
		card, err := deck.TakeCard()
		s.NoError(err)
		drawn = append(drawn, card)
	}

	s.Equal(Card{Rank: Two, Suit: Clubs}, drawn[0], "First card should be the Two of Clubs")
	s.Equal(Card{Rank: Ace, Suit: Clubs}, drawn[12], "Thirteenth card should be the Ace of Clubs")
	s.Equal(Card{Rank: Two, Suit: Diamonds}, drawn[13], "Fourteenth card should be the Two of Diamonds")
	s.Equal(Card{Rank: Ace, Suit: Spades}, drawn[51], "Last card should be the Ace of Spades")

	i := 0
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			s.Equal(Card{Rank: rank, Suit: suit}, drawn[i], "Card %d should follow the canonical order", i)
			i++
		}
	}
}

func (s *DeckTestSuite) TestShufflePreservesMembership() {
	// Setup
	deck, err := New(WithRand(rand.New(rand.NewSource(42))))
	s.NoError(err)

	// Execute
	deck.Shuffle()

	// Assert
	s.Equal(52, deck.Remaining(), "Shuffle should not change deck size")
	counts := make(map[Card]int)
	for !deck.Empty() {
		card, err := deck.TakeCard()
		s.NoError(err)
		counts[card]++
	}
	s.Len(counts, 52, "Shuffle should not change deck membership")
	for card, count := range counts {
		s.Equal(1, count, "Card %v should still appear exactly once after shuffle", card)
	}
}

func (s *DeckTestSuite) TestShuffleChangesOrder() {
	// Setup
	shuffled, err := New(WithRand(rand.New(rand.NewSource(42))))
	s.NoError(err)
	canonical, err := New()
	s.NoError(err)

	// Execute
	shuffled.Shuffle()

	// Assert: 52! orderings make an accidental match with the
	// canonical order practically impossible for a fixed seed
	same := true
	for i := 0; i < 52; i++ {
		a, errA := shuffled.TakeCard()
		b, errB := canonical.TakeCard()
		s.NoError(errA)
		s.NoError(errB)
		if a != b {
			same = false
		}
	}
	s.False(same, "Shuffled deck should differ from canonical order")
}

func (s *DeckTestSuite) TestShuffleIsDeterministicWithSeededRand() {
	deck1, err := New(WithRand(rand.New(rand.NewSource(7))))
	s.NoError(err)
	deck2, err := New(WithRand(rand.New(rand.NewSource(7))))
	s.NoError(err)

	deck1.Shuffle()
	deck2.Shuffle()

	for i := 0; i < 52; i++ {
		a, _ := deck1.TakeCard()
		b, _ := deck2.TakeCard()
		s.Equal(a, b, "Same seed should produce the same shuffle at position %d", i)
	}
}

func (s *DeckTestSuite) TestTakeCardFromEmptyDeck() {
	// Setup
	deck, err := New()
	s.NoError(err)
	for i := 0; i < 52; i++ {
		_, err := deck.TakeCard()
		s.NoError(err, "Taking card %d should succeed", i+1)
	}
	s.True(deck.Empty(), "Deck should be empty after taking all 52 cards")

	// Execute
	_, err = deck.TakeCard()

	// Assert
	s.Error(err, "Taking from an empty deck should fail")
	s.True(IsCardError(err, ErrEmptyDeck), "Error should carry the EMPTY_DECK code")
	s.Equal(0, deck.Remaining(), "Remaining count should stay at zero")
}

func (s *DeckTestSuite) TestTakeCardShrinksDeck() {
	deck, err := New()
	s.NoError(err)

	card, err := deck.TakeCard()
	s.NoError(err)
	s.Equal(51, deck.Remaining(), "Deck should shrink by one")
	s.Equal(Card{Rank: Two, Suit: Clubs}, card, "Unshuffled deck should deal from the canonical front")
}

func (s *DeckTestSuite) TestTakeCardID() {
	testCases := []struct {
		name     string
		id       string
		expected Card
	}{
		{
			name:     "queen of hearts",
			id:       "QH",
			expected: Card{Rank: Queen, Suit: Hearts},
		},
		{
			name:     "two of clubs",
			id:       "2C",
			expected: Card{Rank: Two, Suit: Clubs},
		},
		{
			name:     "ten of spades",
			id:       "TS",
			expected: Card{Rank: Ten, Suit: Spades},
		},
		{
			name:     "king of diamonds",
			id:       "KD",
			expected: Card{Rank: King, Suit: Diamonds},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			deck, err := New()
			s.NoError(err)

			// Execute
			card, err := deck.TakeCardID(tc.id)

			// Assert
			s.NoError(err)
			s.Equal(tc.expected, card, "Taken card should match the requested ID")
			s.Equal(51, deck.Remaining(), "Deck should shrink by one")

			// The card must be gone now
			_, err = deck.TakeCardID(tc.id)
			s.True(IsCardError(err, ErrCardNotFound), "Second take of the same ID should fail with CARD_NOT_FOUND")
		})
	}
}

func (s *DeckTestSuite) TestTakeCardIDRejectsMalformedID() {
	deck, err := New()
	s.NoError(err)

	_, err = deck.TakeCardID("XX")
	s.True(IsCardError(err, ErrInvalidValue), "Malformed ID should fail with INVALID_VALUE")
	s.Equal(52, deck.Remaining(), "Failed take should not change the deck")
}

func (s *DeckTestSuite) TestReset() {
	// Setup
	deck, err := New()
	s.NoError(err)
	deck.Shuffle()
	for i := 0; i < 10; i++ {
		_, err := deck.TakeCard()
		s.NoError(err)
	}
	s.Equal(42, deck.Remaining())

	// Execute
	deck.Reset()

	// Assert
	s.Equal(52, deck.Remaining(), "Reset should restore the full pack")
	card, err := deck.TakeCard()
	s.NoError(err)
	s.Equal(Card{Rank: Two, Suit: Clubs}, card, "Reset deck should be back in canonical order")
}

func (s *DeckTestSuite) TestWithDecks() {
	// Execute
	shoe, err := New(WithDecks(3))

	// Assert
	s.NoError(err)
	s.Equal(156, shoe.Remaining(), "Three packs should hold 156 cards")

	counts := make(map[Card]int)
	for !shoe.Empty() {
		card, err := shoe.TakeCard()
		s.NoError(err)
		counts[card]++
	}
	s.Len(counts, 52, "Shoe should hold the 52 distinct combinations")
	for card, count := range counts {
		s.Equal(3, count, "Card %v should appear once per pack", card)
	}

	shoe.Reset()
	s.Equal(156, shoe.Remaining(), "Reset should restore all packs")
}

func (s *DeckTestSuite) TestWithDecksRejectsInvalidCount() {
	testCases := []struct {
		name  string
		packs int
	}{
		{name: "zero packs", packs: 0},
		{name: "negative packs", packs: -1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(WithDecks(tc.packs))
			s.Error(err, "Invalid pack count should fail")
			s.True(IsCardError(err, ErrInvalidValue), "Error should carry the INVALID_VALUE code")
		})
	}
}

func (s *DeckTestSuite) TestTakeCardIDFromShoe() {
	// Two packs: the same ID can be taken twice before it runs out
	shoe, err := New(WithDecks(2))
	s.NoError(err)

	first, err := shoe.TakeCardID("AS")
	s.NoError(err)
	s.Equal(Card{Rank: Ace, Suit: Spades}, first)

	second, err := shoe.TakeCardID("AS")
	s.NoError(err)
	s.Equal(first, second)

	_, err = shoe.TakeCardID("AS")
	s.True(IsCardError(err, ErrCardNotFound), "Third take should fail once both copies are gone")
}

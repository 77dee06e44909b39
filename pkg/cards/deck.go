package cards

import (
	"fmt"
	"math/rand"
)

// Deck represents an ordered sequence of undealt cards.
//
// A freshly built single-pack deck holds each of the 52 rank and suit
// combinations exactly once, in canonical order: suits in Suits()
// order, ranks ascending within each suit. The first card is the Two
// of Clubs and the last the Ace of Spades. Cards are always taken from
// the front.
//
// A Deck assumes a single owner and is not safe for concurrent use;
// callers sharing one across goroutines must add their own locking.
type Deck struct {
	cards []Card
	packs int
	rng   *rand.Rand
}

// Option configures a deck at construction time
type Option func(*Deck)

// WithRand sets the random source used by Shuffle, allowing
// deterministic shuffles in tests and demos
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = rng
	}
}

// WithDecks combines n 52-card packs into a single shoe
func WithDecks(n int) Option {
	return func(d *Deck) {
		d.packs = n
	}
}

// New creates a fully populated deck in canonical order. The deck is
// not pre-shuffled; call Shuffle before play.
func New(opts ...Option) (*Deck, error) {
	d := &Deck{packs: 1}
	for _, opt := range opts {
		opt(d)
	}
	if d.packs < 1 {
		return nil, NewCardError(ErrInvalidValue, fmt.Sprintf("%d is not a valid number of packs", d.packs))
	}
	d.fill()
	return d, nil
}

func (d *Deck) fill() {
	d.cards = make([]Card, 0, d.packs*52)
	for p := 0; p < d.packs; p++ {
		for _, suit := range Suits() {
			for _, rank := range Ranks() {
				d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
}

// Shuffle randomly permutes the remaining cards in place using
// Fisher-Yates. Deck size and membership are unchanged, only order.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// TakeCard removes and returns the front card. Taking from an empty
// deck fails with an EMPTY_DECK error; there is no sentinel card.
func (d *Deck) TakeCard() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, NewCardError(ErrEmptyDeck, "no cards remaining in the deck")
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// TakeCardID removes and returns the first remaining card matching the
// given two-character ID, wherever it sits in the deck. It fails with
// INVALID_VALUE for a malformed ID and CARD_NOT_FOUND when the card
// has already been taken.
func (d *Deck) TakeCardID(id string) (Card, error) {
	want, err := ParseCard(id)
	if err != nil {
		return Card{}, err
	}
	for i, card := range d.cards {
		if card == want {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return card, nil
		}
	}
	return Card{}, NewCardError(ErrCardNotFound, fmt.Sprintf("card %s is not in the deck", id))
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Empty reports whether all cards have been taken
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Reset replaces the remaining sequence with freshly built full
// pack(s) in canonical order. It never appends to a partial deck.
func (d *Deck) Reset() {
	d.fill()
}

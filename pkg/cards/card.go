package cards

import "fmt"

// Colour represents a card colour, derived from the suit
type Colour int

const (
	Black Colour = iota
	Red
)

// String returns the colour name
func (c Colour) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Rank represents a card rank.
//
// Aces are high: Two is the lowest rank and Ace the highest, so the
// Ace of Spades outranks the King of Hearts. Ranks form a total order
// through their underlying integer values.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

var rankIDs = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Ranks returns all thirteen ranks in ascending order
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Valid reports whether the rank is one of the thirteen recognized ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the long rank name, e.g. "Queen"
func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// ID returns the one-character rank label used in card IDs ("2"-"9",
// "T", "J", "Q", "K", "A")
func (r Rank) ID() string {
	if id, ok := rankIDs[r]; ok {
		return id
	}
	return "?"
}

// ParseRank returns the rank for a one-character label
func ParseRank(id string) (Rank, error) {
	for rank, rankID := range rankIDs {
		if rankID == id {
			return rank, nil
		}
	}
	return 0, NewCardError(ErrInvalidValue, fmt.Sprintf("%q is not a valid rank", id))
}

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = map[Suit]string{
	Clubs:    "Clubs",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Spades:   "Spades",
}

var suitIDs = map[Suit]string{
	Clubs:    "C",
	Diamonds: "D",
	Hearts:   "H",
	Spades:   "S",
}

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// Suits returns the four suits in their fixed iteration order:
// Clubs, Diamonds, Hearts, Spades. Prompts and the canonical deck
// order both rely on this order being stable.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Valid reports whether the suit is one of the four recognized suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// String returns the suit name, e.g. "Hearts"
func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// ID returns the one-character suit label used in card IDs
func (s Suit) ID() string {
	if id, ok := suitIDs[s]; ok {
		return id
	}
	return "?"
}

// Symbol returns the suit glyph, e.g. "♥"
func (s Suit) Symbol() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Colour returns the colour of the suit: Hearts and Diamonds are Red,
// Clubs and Spades are Black
func (s Suit) Colour() Colour {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// ParseSuit returns the suit for a one-character label
func ParseSuit(id string) (Suit, error) {
	for suit, suitID := range suitIDs {
		if suitID == id {
			return suit, nil
		}
	}
	return 0, NewCardError(ErrInvalidValue, fmt.Sprintf("%q is not a valid suit", id))
}

// Card represents a playing card from the French-suited, standard
// 52-card pack. Cards are immutable values; two cards are equal iff
// both rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card, validating both members
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, NewCardError(ErrInvalidValue, fmt.Sprintf("%d is not a valid rank", int(rank)))
	}
	if !suit.Valid() {
		return Card{}, NewCardError(ErrInvalidValue, fmt.Sprintf("%d is not a valid suit", int(suit)))
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCard returns the card for a two-character ID such as "QH"
func ParseCard(id string) (Card, error) {
	if len(id) != 2 {
		return Card{}, NewCardError(ErrInvalidValue, fmt.Sprintf("card ID %q should be 2 characters", id))
	}
	rank, err := ParseRank(id[:1])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(id[1:])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ID returns the compact card label, rank ID followed by suit ID
// (e.g. "QH" for the Queen of Hearts)
func (c Card) ID() string {
	return c.Rank.ID() + c.Suit.ID()
}

// String returns the compact card label
func (c Card) String() string {
	return c.ID()
}

// Face returns the human-readable card label, e.g. "Queen of Hearts"
func (c Card) Face() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Colour returns the colour of the card, derived from its suit
func (c Card) Colour() Colour {
	return c.Suit.Colour()
}

// CompareRank compares two cards by rank only, ignoring suit. It
// returns -1 if c ranks below other, +1 if above, and 0 for equal
// ranks. Equality of cards themselves is plain struct equality.
func (c Card) CompareRank(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// Package theme controls how cards are rendered in the terminal.
// Themes are small TOML files mapping suit names to display symbols,
// in the spirit of deck metadata files shipped alongside card decks.
package theme

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"github.com/cardroom/playingcards/pkg/cards"
)

// Theme describes how cards are displayed
type Theme struct {
	Name    string            `toml:"name"`
	Symbols map[string]string `toml:"symbols"` // suit name (lowercase) -> glyph
}

// Default returns the built-in theme using the standard suit glyphs
func Default() *Theme {
	symbols := make(map[string]string, 4)
	for _, suit := range cards.Suits() {
		symbols[strings.ToLower(suit.String())] = suit.Symbol()
	}
	return &Theme{
		Name:    "default",
		Symbols: symbols,
	}
}

// Load reads a theme from a TOML file. Symbols for suits the file does
// not mention fall back to the default glyphs; unknown suit keys are
// rejected.
func Load(path string) (*Theme, error) {
	var t Theme
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("error parsing theme file: %w", err)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	// Fill in suits the file left out
	defaults := Default()
	if t.Symbols == nil {
		t.Symbols = make(map[string]string, 4)
	}
	for name, symbol := range defaults.Symbols {
		if _, ok := t.Symbols[name]; !ok {
			t.Symbols[name] = symbol
		}
	}
	if t.Name == "" {
		t.Name = "custom"
	}

	return &t, nil
}

func (t *Theme) validate() error {
	known := make(map[string]bool, 4)
	for _, suit := range cards.Suits() {
		known[strings.ToLower(suit.String())] = true
	}
	for name := range t.Symbols {
		if !known[name] {
			return fmt.Errorf("unknown suit %q in theme", name)
		}
	}
	return nil
}

// Symbol returns the themed glyph for a suit
func (t *Theme) Symbol(suit cards.Suit) string {
	if symbol, ok := t.Symbols[strings.ToLower(suit.String())]; ok {
		return symbol
	}
	return suit.Symbol()
}

// Render returns the coloured compact label for a card, rank followed
// by the themed suit glyph. Red suits render in red.
func (t *Theme) Render(c cards.Card) string {
	label := c.Rank.ID() + t.Symbol(c.Suit)
	if c.Colour() == cards.Red {
		return color.New(color.FgRed).Sprint(label)
	}
	return color.New(color.Bold).Sprint(label)
}

// RenderFace returns the coloured long label for a card, e.g.
// "Queen of Hearts"
func (t *Theme) RenderFace(c cards.Card) string {
	if c.Colour() == cards.Red {
		return color.New(color.FgRed).Sprint(c.Face())
	}
	return color.New(color.Bold).Sprint(c.Face())
}

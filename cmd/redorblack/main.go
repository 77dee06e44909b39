package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardroom/playingcards/internal/config"
	"github.com/cardroom/playingcards/internal/logging"
	"github.com/cardroom/playingcards/internal/theme"
	"github.com/cardroom/playingcards/pkg/cards"
	"github.com/cardroom/playingcards/pkg/games/redorblack"
	"github.com/cardroom/playingcards/pkg/repositories/results"
)

var seedFlag int64

var rootCmd = &cobra.Command{
	Use:   "redorblack",
	Short: "Play Red or Black with a standard 52-card deck",
	Long: `Red or Black is a four-round guessing game played with a standard
52-card French-suited deck: guess the colour of the first card, whether
the second ranks higher or lower, whether the third lands inside or
outside the first two, and finally the suit of the fourth.`,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game of Red or Black",
	RunE:  runPlay,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent game results",
	RunE:  runStats,
}

func init() {
	playCmd.Flags().Int64Var(&seedFlag, "seed", 0, "shuffle seed for a deterministic game (overrides SHUFFLE_SEED)")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRepository picks the result store from config, falling back to
// memory when SQLite cannot be opened
func openRepository(cfg *config.Config, logger *logging.Logger) results.Repository {
	if cfg.StorageType == config.StorageSQLite {
		repo, err := results.NewSQLiteRepository(cfg.DatabasePath())
		if err != nil {
			logger.Warn("Failed to open SQLite repository at %s: %v", cfg.DatabasePath(), err)
			logger.Warn("Falling back to in-memory result storage")
			return results.NewMemoryRepository()
		}
		logger.Debug("Using SQLite result storage at %s", cfg.DatabasePath())
		return repo
	}
	logger.Debug("Using in-memory result storage (results are lost on exit)")
	return results.NewMemoryRepository()
}

func loadTheme(cfg *config.Config, logger *logging.Logger) *theme.Theme {
	if cfg.ThemePath == "" {
		return theme.Default()
	}
	th, err := theme.Load(cfg.ThemePath)
	if err != nil {
		logger.Warn("Failed to load theme %s: %v, using default", cfg.ThemePath, err)
		return theme.Default()
	}
	return th
}

func buildDeck(cfg *config.Config) (*cards.Deck, error) {
	var opts []cards.Option
	switch {
	case seedFlag != 0:
		opts = append(opts, cards.WithRand(rand.New(rand.NewSource(seedFlag))))
	case cfg.HasSeed:
		opts = append(opts, cards.WithRand(rand.New(rand.NewSource(cfg.ShuffleSeed))))
	}
	deck, err := cards.New(opts...)
	if err != nil {
		return nil, err
	}
	deck.Shuffle()
	return deck, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Default
	if cfg.IsDevelopment() {
		logger = logging.NewLogger(logging.DEBUG)
	}

	th := loadTheme(cfg, logger)
	repo := openRepository(cfg, logger)
	defer repo.Close()

	deck, err := buildDeck(cfg)
	if err != nil {
		return err
	}

	game := redorblack.NewGame(deck)
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	suits := redorblack.SuitChoices()
	suitPrompt := fmt.Sprintf("%s, or %s?", strings.Join(suits[:len(suits)-1], ", "), suits[len(suits)-1])

	rounds := []struct {
		prompt string
		play   func(string) (redorblack.Outcome, error)
	}{
		{"Red or black?", game.GuessColour},
		{"Higher or lower than the last card?", game.GuessHigherLower},
		{"Inside or outside the first two cards?", game.GuessInsideOutside},
		{suitPrompt, game.GuessSuit},
	}

	fmt.Fprintln(out, "Welcome to Red or Black! Four rounds, four guesses.")
	for i, round := range rounds {
		outcome, err := promptRound(out, scanner, i+1, round.prompt, round.play)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nGame abandoned.")
				return nil
			}
			logger.LogError(err)
			return err
		}
		verdict := "wrong"
		if outcome.Won {
			verdict = "correct"
		}
		fmt.Fprintf(out, "Drew %s (%s) - %s!\n\n", th.Render(outcome.Card), outcome.Card.Face(), verdict)
	}

	result, err := game.Result()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "You got %d of 4.\n", result.Wins)

	if err := repo.SaveResult(context.Background(), result); err != nil {
		// Losing the tally should not fail the game
		logger.Warn("Failed to save result: %v", err)
	}
	return nil
}

// promptRound asks until the guess parses; draw errors are fatal
func promptRound(out io.Writer, scanner *bufio.Scanner, number int, prompt string, play func(string) (redorblack.Outcome, error)) (redorblack.Outcome, error) {
	for {
		fmt.Fprintf(out, "Round %d: %s\n> ", number, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return redorblack.Outcome{}, err
			}
			return redorblack.Outcome{}, io.EOF
		}
		outcome, err := play(scanner.Text())
		if errors.Is(err, redorblack.ErrUnknownGuess) {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		return outcome, err
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Default

	repo := openRepository(cfg, logger)
	defer repo.Close()

	listed, err := repo.ListResults(context.Background(), 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(listed) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return nil
	}

	th := loadTheme(cfg, logger)
	fmt.Fprintf(out, "Last %d game(s):\n", len(listed))
	for _, result := range listed {
		drawn := make([]string, 0, len(result.Outcomes))
		for _, outcome := range result.Outcomes {
			drawn = append(drawn, th.Render(outcome.Card))
		}
		fmt.Fprintf(out, "  %s  %d/4  %s\n",
			result.CompletedAt.Local().Format("2006-01-02 15:04"),
			result.Wins,
			strings.Join(drawn, " "),
		)
	}
	return nil
}

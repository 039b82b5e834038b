package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best runs. In a terminal this opens an interactive
table; with --plain (or when output is not a terminal) the top 10 runs
are printed. --clear deletes every recorded run of the game.

Examples:
  shooter scores
  shooter scores --plain
  shooter scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 instead of opening the table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

// resolveGame picks the game named in args, defaulting to the shooter.
func resolveGame(args []string) (string, error) {
	if len(args) == 0 {
		return shooter.ID, nil
	}
	if registry.Exists(args[0]) {
		return args[0], nil
	}

	var ids []string
	for _, g := range registry.List() {
		ids = append(ids, g.ID)
	}
	return "", fmt.Errorf("unknown game %q (available: %s)", args[0], strings.Join(ids, ", "))
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := resolveGame(args)
	if err != nil {
		return err
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(cmd, store, gameID, title)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, gameID, title, flagFPS, width, height)
	}

	return printScores(cmd, store, gameID, title)
}

func clearScores(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	if err := store.ClearScores(gameID); err != nil {
		return fmt.Errorf("error clearing scores: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared all runs for %s.\n", title)
	return nil
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	out := cmd.OutOrStdout()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'shooter play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Coins", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Coins, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

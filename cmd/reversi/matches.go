package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/platform/tui"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	flagBrowse bool
	flagReplay int64
	flagLimit  int
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show finished matches",
	Long: `Display recently finished matches.

With --browse, opens an interactive browser where each match's move log
can be inspected. With --replay <id>, prints the move log of one match.

Examples:
  reversi matches
  reversi matches --limit 25
  reversi matches --browse
  reversi matches --replay 3`,
	Run: runMatches,
}

func init() {
	matchesCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive match browser")
	matchesCmd.Flags().Int64Var(&flagReplay, "replay", 0, "Print the move log of the given match ID")
	matchesCmd.Flags().IntVar(&flagLimit, "limit", 10, "How many matches to show")
}

func runMatches(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagBrowse:
		if err := tui.RunHistory(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			os.Exit(1)
		}
	case flagReplay != 0:
		printMoves(store, flagReplay)
	default:
		printMatches(store, flagLimit)
	}
}

func printMatches(store *storage.Store, limit int) {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'reversi play' to record the first one!")
		return
	}

	fmt.Println("Recent matches:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-5s  %s\n", "ID", "Variant", "Result", "Winner", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-5s  %s\n", "--", "-------", "------", "------", "-----", "----")

	// Print matches
	for _, rec := range matches {
		winner := rec.Winner
		if winner == "" {
			winner = "draw"
		}
		result := fmt.Sprintf("%d - %d", rec.BlueScore, rec.RedScore)
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-9s  %-6s  %-5d  %s\n",
			rec.ID, rec.Variant, result, winner, rec.MoveCount, dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'reversi matches --replay <id>' to see a match's moves.")
}

func printMoves(store *storage.Store, matchID int64) {
	moves, err := store.MatchMoves(matchID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving moves: %v\n", err)
		os.Exit(1)
	}

	if len(moves) == 0 {
		fmt.Printf("No moves recorded for match %d.\n", matchID)
		return
	}

	fmt.Printf("Match %d:\n\n", matchID)
	for _, mv := range moves {
		if mv.Pass {
			fmt.Printf("  %3d. %-4s pass\n", mv.Ply, mv.Piece)
			continue
		}
		fmt.Printf("  %3d. %-4s %-6s flips %d\n", mv.Ply, mv.Piece, mv.Coord, mv.Flips)
	}
}

// reversi is a terminal Reversi for two players sharing a keyboard.
//
// Usage:
//
//	reversi list               - List board variants
//	reversi play [variant]     - Play a hot-seat match
//	reversi matches            - Browse finished matches
//	reversi serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.reversi/matches.db)
//	--config <path>  - Set config file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register board variants
	_ "github.com/vovakirdan/tui-reversi/internal/game"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi - Play Othello-style matches in your terminal",
	Long: `Reversi is a terminal board game for two players sharing one
keyboard (or one SSH session).

Available commands:
  list     - Show all board variants
  play     - Start a hot-seat match
  matches  - Browse finished matches and their move logs
  serve    - Start SSH server for remote play

Examples:
  reversi list
  reversi play
  reversi play grand
  reversi matches --browse
  reversi serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to matches database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(serveCmd)
}

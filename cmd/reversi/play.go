package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reversi/internal/board"
	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/game"
	"github.com/vovakirdan/tui-reversi/internal/platform/tui"
	"github.com/vovakirdan/tui-reversi/internal/registry"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

var (
	flagSize   int
	flagStrict bool
	flagFirst  string
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a hot-seat match",
	Long: `Start a two-player match in the terminal. Both players share the
keyboard; the board tracks whose turn it is.

Controls:
  Arrows/hjkl - Move the cursor
  Enter/Space - Place a piece at the cursor
  :           - Type an algebraic coordinate (e.g. D:3)
  P           - Pass
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  reversi play
  reversi play grand
  reversi play --size 10
  reversi play --strict
  reversi play --first red`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides the variant; must be even and > 4)")
	playCmd.Flags().BoolVar(&flagStrict, "strict", false, "Require every move to capture (classical rule)")
	playCmd.Flags().StringVar(&flagFirst, "first", "", "Opening color: blue or red (default: random)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Seed for the opening-color draw (0 = random)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	variant := resolveVariant(args, cfg)

	opts := matchOptions(cfg)
	match, err := game.New(variant.BoardSize, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A narrow terminal cannot fit the board; warn early rather than
	// letting the TUI draw garbage.
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needed := variant.BoardSize*3 + 4
		if w < needed {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %d columns, the %dx%d board wants %d\n",
				w, variant.BoardSize, variant.BoardSize, needed)
		}
	}

	// Open match storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open matches database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(match, variant, store, cfg.Theme)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveVariant picks the board variant: explicit argument, --size
// override, then the configured default size.
func resolveVariant(args []string, cfg config.Config) registry.Variant {
	if len(args) == 1 {
		variant, err := registry.Lookup(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'reversi list' to see available variants.")
			os.Exit(1)
		}
		return variant
	}

	size := cfg.Board.Size
	if flagSize != 0 {
		size = flagSize
	}

	// Prefer a registered variant of the same size, for nicer titles and
	// stable variant IDs in the database.
	for _, v := range registry.List() {
		if v.BoardSize == size {
			return v
		}
	}
	return registry.Variant{
		ID:        "custom",
		Title:     fmt.Sprintf("Custom %dx%d", size, size),
		BoardSize: size,
	}
}

// matchOptions builds the game options from flags and config.
func matchOptions(cfg config.Config) []game.Option {
	var opts []game.Option

	if flagStrict || cfg.Board.StrictCaptures {
		opts = append(opts, game.WithStrictCaptures())
	}

	switch flagFirst {
	case "blue":
		opts = append(opts, game.WithFirstPiece(board.Blue))
	case "red":
		opts = append(opts, game.WithFirstPiece(board.Red))
	case "":
		if flagSeed != 0 {
			opts = append(opts, game.WithSeed(flagSeed))
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: --first must be blue or red, got %q\n", flagFirst)
		os.Exit(1)
	}

	return opts
}

// dbPath resolves the database location: the --db flag wins over config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows a list of all registered board variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print variants
	for _, v := range variants {
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, v.ID,
			fmt.Sprintf("%dx%d", v.BoardSize, v.BoardSize), v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'reversi play <id>' to start a match.")
}

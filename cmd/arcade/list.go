package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-arcade/internal/games/menu"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

// games returns every registered scene except the menu.
func games() []registry.SceneInfo {
	var out []registry.SceneInfo
	for _, s := range registry.List() {
		if s.ID != menu.ID {
			out = append(out, s)
		}
	}
	return out
}

func runList(_ *cobra.Command, _ []string) {
	list := games()

	if len(list) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5
	for _, g := range list {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, g := range list {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, or 'arcade menu' to pick one.")
}

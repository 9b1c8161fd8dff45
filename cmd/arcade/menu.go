package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-arcade/internal/games/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use Up/Down to pick a game and Space or Enter to start it.
Esc in a game returns here; Esc in the menu quits.

Examples:
  arcade menu
  arcade menu --host window
  arcade menu --touch --fps 30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, []string{menu.ID})
	},
}

func init() {
	addPlayFlags(menuCmd)
}

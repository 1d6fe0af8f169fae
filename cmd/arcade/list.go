package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/feel-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows every scenario registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	idW, titleW := len("ID"), len("Title")
	for _, s := range scenarios {
		idW = max(idW, len(s.ID))
		titleW = max(titleW, len(s.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Goal")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "----")
	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-*s  %s\n", idW, s.ID, titleW, s.Title, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' or 'arcade window <id>' to play.")
}

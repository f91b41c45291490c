package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskmasterhq/taskmaster/cmd/tui/client"
	"github.com/taskmasterhq/taskmaster/cmd/tui/ui"
)

func main() {
	baseURL := os.Getenv("TASKMASTER_API")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	apiClient := client.New(baseURL)

	p := tea.NewProgram(
		ui.NewModel(apiClient),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

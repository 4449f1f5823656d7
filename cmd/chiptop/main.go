// chiptop is an interactive terminal chip map for a single WhatsMiner unit.
// It scrapes the miner's status pages, scores every chip, and draws the
// physical board layout with temperature, error, and CRC overlays.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"chipscope/internal/miner"
	"chipscope/internal/ui"
)

func main() {
	host := flag.String("host", "", "miner host or IP (empty shows the login form)")
	user := flag.String("user", "admin", "web interface username")
	pass := flag.String("pass", "", "web interface password")
	flag.Parse()

	client := miner.NewClient()
	model := ui.NewModel(client, *host, *user, *pass)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "chiptop:", err)
		os.Exit(1)
	}
}

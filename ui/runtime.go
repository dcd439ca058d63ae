package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dash-savior/robtop/rrecord"
)

func Start(levels []rrecord.LevelDisplay) error {
	searchViewer := CreateSearchViewer(levels)
	return tea.NewProgram(searchViewer, tea.WithAltScreen()).Start()
}

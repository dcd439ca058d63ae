// Package ui is the interactive viewer for decoded search results.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"dash-savior/robtop/rrecord"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Width(12)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(0, 1)
)

const (
	Title      = "DASH SAVIOR"
	NoneText   = "none"
	HelpFooter = "up/down: move  q: quit"
)

type SearchViewer struct {
	levels []rrecord.LevelDisplay
	cursor int
}

func CreateSearchViewer(levels []rrecord.LevelDisplay) SearchViewer {
	return SearchViewer{
		levels: levels,
	}
}

func (s SearchViewer) Cursor() int {
	return s.cursor
}

func (s SearchViewer) Init() tea.Cmd {
	return nil
}

func (s SearchViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.levels)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s SearchViewer) View() string {
	output := titleStyle.Render(Title) + "\n\n"
	if len(s.levels) == 0 {
		return output + dimStyle.Render("No levels found") + "\n"
	}

	rows := lo.Map(
		s.levels,
		func(level rrecord.LevelDisplay, i int) string {
			row := fmt.Sprintf("%-10d %-24s %s", level.ID, level.Name, level.Difficulty)
			if i == s.cursor {
				return selectedStyle.Render("> " + row)
			}
			return rowStyle.Render("  " + row)
		},
	)
	output += strings.Join(rows, "\n") + "\n\n"
	output += detailStyle.Render(RenderDetail(s.levels[s.cursor])) + "\n"
	output += dimStyle.Render(HelpFooter) + "\n"
	return output
}

func RenderDetail(level rrecord.LevelDisplay) string {
	creator := NoneText
	if level.Creator != nil {
		creator = level.Creator.Name
	}
	song := NoneText
	if level.Song != nil {
		song = fmt.Sprintf("%s by %s", level.Song.Name, level.Song.ArtistName)
	}
	lines := [][2]string{
		{"Name", level.Name},
		{"Creator", creator},
		{"Difficulty", string(level.Difficulty)},
		{"Rating", string(level.Rating)},
		{"Length", string(level.Length)},
		{"Downloads", fmt.Sprint(level.Downloads)},
		{"Likes", fmt.Sprint(level.Likes)},
		{"Song", song},
		{"About", level.Description},
	}
	return strings.Join(
		lo.Map(lines, func(line [2]string, _ int) string {
			return labelStyle.Render(line[0]) + line[1]
		}),
		"\n",
	)
}

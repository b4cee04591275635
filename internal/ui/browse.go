// Package ui provides the interactive terminal browser for the card index.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mireku/cardik/pkg/api"
)

// BrowseCards opens an interactive Bubble Tea table over the scanned cards.
// Typing "/" starts a fuzzy filter over name, company and email.
func BrowseCards(_ context.Context, cards []api.Card) error {
	cols := []table.Column{
		{Title: "ID", Width: 14},
		{Title: "Name", Width: 24},
		{Title: "Company", Width: 20},
		{Title: "Email", Width: 28},
		{Title: "Source", Width: 30},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(min(14, max(3, len(cards)+3))),
	)

	// Basic styling
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := model{table: t, cards: cards}
	m.refresh()
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

type model struct {
	table  table.Model
	cards  []api.Card
	filter string
	typing bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing {
			switch msg.String() {
			case "enter", "esc":
				m.typing = false
			case "backspace":
				if m.filter != "" {
					m.filter = m.filter[:len(m.filter)-1]
					m.refresh()
				}
			case "ctrl+c":
				return m, tea.Quit
			default:
				if len(msg.Runes) > 0 {
					m.filter += string(msg.Runes)
					m.refresh()
				}
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		case "/":
			m.typing = true
			m.filter = ""
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if len(m.cards) == 0 {
		return "(no cards)\n"
	}
	hint := "↑/↓ to navigate • / to filter • enter/q to exit"
	if m.typing || m.filter != "" {
		hint = "filter: " + m.filter + "█"
	}
	return m.table.View() + "\n" + hint + "\n"
}

// refresh rebuilds the visible rows from the current filter.
func (m *model) refresh() {
	rows := make([]table.Row, 0, len(m.cards))
	for _, c := range matchCards(m.filter, m.cards) {
		rows = append(rows, table.Row{
			shortID(c.ID),
			truncate(c.Name, 24),
			truncate(c.Company, 20),
			truncate(c.Email, 28),
			truncate(c.Source(), 30),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// matchCards keeps the fuzzy ranking order fuzzy.Find returns.
func matchCards(filter string, cards []api.Card) []api.Card {
	if filter == "" {
		return cards
	}
	haystack := make([]string, len(cards))
	for i, c := range cards {
		haystack[i] = strings.Join([]string{c.Name, c.Company, c.Email, c.Path}, " ")
	}
	matches := fuzzy.Find(filter, haystack)
	out := make([]api.Card, 0, len(matches))
	for _, mt := range matches {
		out = append(out, cards[mt.Index])
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func shortID(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

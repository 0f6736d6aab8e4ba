package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/letterfall/internal/core"
)

// Summary layout constants
const (
	summaryChrome    = 10 // Title, stats, borders and help around the table
	summaryMinHeight = 3
)

// Stats aggregates the words accepted in one game.
type Stats struct {
	Words   int
	Bonuses int
	Letters int
	Points  int
	Best    core.Submission // Highest-scoring word; first one wins ties
}

// Summarize computes Stats over history.
func Summarize(history []core.Submission) Stats {
	var st Stats
	for _, s := range history {
		st.Words++
		st.Letters += s.Letters
		st.Points += s.Points
		if s.Bonus {
			st.Bonuses++
		}
		if s.Points > st.Best.Points {
			st.Best = s
		}
	}
	return st
}

// summaryRows converts history into table rows, oldest first.
func summaryRows(history []core.Submission) []table.Row {
	rows := make([]table.Row, len(history))
	for i, s := range history {
		bonus := ""
		if s.Bonus {
			bonus = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Word,
			humanize.Comma(int64(s.Points)),
			bonus,
		}
	}
	return rows
}

// newSummaryTable builds the accepted-words table shown after game over.
func newSummaryTable(history []core.Submission, width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Word", Width: 14},
		{Title: "Points", Width: 8},
		{Title: "Bonus", Width: 6},
	}

	// Give spare width to the word column
	if spare := width - 4 - 33 - 8; spare > 0 {
		columns[1].Width += core.Min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(summaryRows(history)),
		table.WithFocused(true),
		table.WithHeight(core.Max(height-summaryChrome, summaryMinHeight)),
	)

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

	return t
}

// summaryView renders the end-of-game word list.
func (m *Model) summaryView() string {
	history := m.game.History()
	st := Summarize(history)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	statStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder

	title := fmt.Sprintf("Nice Try Bucko! Your score: %s", humanize.Comma(int64(m.state.Score)))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	played := m.endedAt.Sub(m.startedAt).Round(time.Second)
	stats := fmt.Sprintf("%d words, %d bonus, %d letters claimed, played %s",
		st.Words, st.Bonuses, st.Letters, played)
	if st.Words > 0 {
		stats += fmt.Sprintf(", best %s (+%d)", st.Best.Word, st.Best.Points)
	}
	b.WriteString(statStyle.Render(centerText(stats, m.width)))
	b.WriteString("\n\n")

	if len(history) == 0 {
		b.WriteString(centerText("No words this time.", m.width))
	} else {
		b.WriteString(tableStyle.Render(m.summary.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(gameOverHelp{m.keys})))
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/Semior001/newspos/app/report"
	"github.com/Semior001/newspos/app/service"
	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	colorPrimary   = "#7D56F4"
	colorSuccess   = "#04B575"
	colorError     = "#FF0000"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#874BFD"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorInfo))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(colorPrimary)).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1)

	previewStyle = lipgloss.NewStyle().Width(80)
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("News article POS analyzer"))
	b.WriteString("\n")

	b.WriteString("URL: " + boxStyle.Render(m.Input+"█"))
	b.WriteString("\n\n")

	switch m.State {
	case StateIdle:
		b.WriteString(infoStyle.Render("Type or paste the link to the article and press Enter"))
	case StateFetching:
		b.WriteString(statusStyle.Render("Fetching and analyzing the article..."))
	case StateError:
		b.WriteString(errorStyle.Render(service.UserMessage(m.Err)))
	case StateDone:
		b.WriteString(formatReport(m.Report))
	}
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Enter: analyze | Ctrl+U: clear | Esc or Ctrl+C: quit"))

	return b.String()
}

func formatReport(r report.Report) string {
	var b strings.Builder

	if r.Title != "" {
		b.WriteString(headerStyle.Render(r.Title))
		b.WriteString("\n")
	}
	b.WriteString(infoStyle.Render(r.URL))
	b.WriteString("\n\n")

	b.WriteString(previewStyle.Render(r.Preview))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total characters: %d\n\n", r.Chars))

	b.WriteString(headerStyle.Render("Parts of speech"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total words: %d | Unique POS tags: %d | Most common tag: %s\n\n",
		r.TotalTokens, r.UniqueTags, r.MostCommon))

	for _, row := range r.Rows {
		b.WriteString(fmt.Sprintf("%-6s %-40s %6d\n", row.Tag, row.Description, row.Count))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("Top %d POS tags", len(r.Top))))
	b.WriteString("\n")
	for _, row := range r.Top {
		bar := report.Bar(row.Count, r.MaxCount(), report.BarWidth)
		b.WriteString(fmt.Sprintf("%-6s %s %d\n", row.Tag, barStyle.Render(bar), row.Count))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Sample words"))
	b.WriteString("\n")
	for _, ex := range r.Examples {
		b.WriteString(fmt.Sprintf("%s (%s): %s\n", ex.Tag, ex.Description, strings.Join(ex.Words, ", ")))
	}

	return strings.TrimRight(b.String(), "\n")
}

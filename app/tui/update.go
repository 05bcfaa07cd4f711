package tui

import (
	"strings"

	"github.com/Semior001/newspos/app/report"
	"github.com/Semior001/newspos/app/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case AnalysisDoneMsg:
		return m.handleAnalysisDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	}

	// the article is being fetched, only quitting is allowed
	if m.State == StateFetching {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.Input = ""
	case tea.KeyRunes, tea.KeySpace:
		m.Input += string(msg.Runes)
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	u := strings.TrimSpace(m.Input)
	if err := service.ValidateURL(u); err != nil {
		m.State = StateError
		m.Err = err
		return m, nil
	}

	m.State = StateFetching
	m.Err = nil
	m.Report = report.Report{}
	return m, m.analyze(u)
}

// handleAnalysisDone processes the analysis result
func (m Model) handleAnalysisDone(msg AnalysisDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}

	m.State = StateDone
	m.Report = msg.Report
	m.Input = ""
	return m, nil
}

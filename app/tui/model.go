// Package tui is an interactive terminal frontend for the analyzer.
package tui

import (
	"context"

	"github.com/Semior001/newspos/app/report"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate moq -out mock_analyzer.go . Analyzer

// Analyzer makes a report about the article by its URL.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (report.Report, error)
}

// State represents the application state machine
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateDone     State = "done"
	StateError    State = "error"
)

// AnalysisDoneMsg is sent when the analysis of the article is finished.
type AnalysisDoneMsg struct {
	URL    string
	Report report.Report
	Err    error
}

// Model is the state of the terminal UI.
type Model struct {
	analyze func(url string) tea.Cmd

	// Input is the URL being typed by the user.
	Input  string
	State  State
	Report report.Report
	Err    error
}

// NewModel creates a new TUI model, analyze makes the command
// to run for the submitted URL, see AnalyzeCmd.
func NewModel(analyze func(url string) tea.Cmd) Model {
	return Model{analyze: analyze, State: StateIdle}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd { return nil }

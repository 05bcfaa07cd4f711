package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AnalyzeCmd returns a constructor of commands fetching and analyzing
// the article. The context bounds every analysis started from the UI,
// timeout limits each of them, if set.
func AnalyzeCmd(ctx context.Context, svc Analyzer, timeout time.Duration) func(url string) tea.Cmd {
	return func(url string) tea.Cmd {
		return func() tea.Msg {
			ctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			rep, err := svc.Analyze(ctx, url)
			return AnalysisDoneMsg{URL: url, Report: rep, Err: err}
		}
	}
}

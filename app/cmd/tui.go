package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Semior001/newspos/app/tui"
	"github.com/Semior001/newspos/pkg/logx"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is a command to run the interactive terminal interface.
type TUI struct {
	Fetch FetchOpts `group:"fetch" namespace:"fetch" env-namespace:"FETCH"`

	Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"1m" description:"timeout for a single analysis"`
	LogFile string        `long:"log-file" env:"LOG_FILE" description:"file to write logs to, logs are discarded if empty"`
}

// Execute runs the command.
func (t TUI) Execute(_ []string) error {
	// the terminal belongs to the UI, so logs go to a file if anywhere
	lg := slog.New(logx.NoOp())
	if t.LogFile != "" {
		f, err := os.OpenFile(t.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		lg = slog.New(&logx.Chain{
			Middleware: []logx.Middleware{logx.RequestID},
			Handler:    slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}),
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(tui.NewModel(tui.AnalyzeCmd(ctx, t.Fetch.service(lg), t.Timeout)))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}

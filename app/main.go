// Package main is an entrypoint for application
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/Semior001/newspos/app/cmd"
	"github.com/Semior001/newspos/pkg/logx"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

var opts struct {
	Analyze cmd.Analyze `command:"analyze" description:"analyze a single article and print the report"`
	Server  cmd.Server  `command:"server" description:"run web interface"`
	Bot     cmd.Bot     `command:"bot" description:"run telegram bot"`
	TUI     cmd.TUI     `command:"tui" description:"run interactive terminal interface"`

	JSONLogs bool `long:"json-logs" env:"JSON_LOGS" description:"turn on json logs"`
	Debug    bool `long:"dbg" env:"DEBUG" description:"turn on debug mode"`
}

var version = "unknown"

func getVersion() string {
	v, ok := debug.ReadBuildInfo()
	if !ok || v.Main.Version == "(devel)" {
		return version
	}
	return v.Main.Version
}

func main() {
	// missing .env is fine, the environment might be set up otherwise
	_ = godotenv.Load()

	fmt.Fprintf(os.Stderr, "newspos, version: %s\n", getVersion())

	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLog()

		if err := cmd.Execute(args); err != nil {
			slog.Error("failed to execute command", slog.Any("err", err))
			os.Exit(1)
		}

		return nil
	}

	// after failure command does not return non-zero code
	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			slog.Error("failed to parse flags", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func setupLog() {
	handlerOpts := &slog.HandlerOptions{Level: slog.LevelInfo}

	if opts.Debug {
		handlerOpts.Level = slog.LevelDebug
		handlerOpts.AddSource = true
	}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	if opts.JSONLogs {
		h = slog.NewJSONHandler(os.Stderr, handlerOpts)
	}

	slog.SetDefault(slog.New(&logx.Chain{
		Middleware: []logx.Middleware{logx.RequestID},
		Handler:    h,
	}))
}

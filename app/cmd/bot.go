package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Semior001/newspos/app/bot"
	"github.com/Semior001/newspos/pkg/botx"
	"github.com/Semior001/newspos/pkg/botx/botapi"
)

// Bot is a command to run the telegram bot.
type Bot struct {
	Fetch FetchOpts `group:"fetch" namespace:"fetch" env-namespace:"FETCH"`

	Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"1m" description:"timeout for handling a single message"`
	Workers int           `long:"workers" env:"WORKERS" default:"10" description:"number of messages handled at once"`

	Telegram struct {
		Token string `long:"token" env:"TOKEN" required:"true" description:"telegram token"`
	} `group:"telegram" namespace:"telegram" env-namespace:"TELEGRAM"`
}

// Execute runs the command.
func (b Bot) Execute(_ []string) error {
	lg := slog.Default()

	api, err := botapi.NewTelegram(lg.With(slog.String("prefix", "telegram")), b.Telegram.Token, 100)
	if err != nil {
		return fmt.Errorf("make telegram controller: %w", err)
	}

	ctrl := &bot.Ctrl{
		Logger:         lg.With(slog.String("prefix", "bot")),
		Service:        b.Fetch.service(lg),
		API:            api,
		HandlerTimeout: b.Timeout,
	}

	bt := botx.NewBot(
		ctrl.Routes().Handle,
		api,
		botx.WithLogger(lg.With(slog.String("prefix", "botx"))),
		botx.WithWorkers(b.Workers),
	)

	// api lives out of the group, it must be drained after the workers are gone
	apiStopped := make(chan struct{})
	go func() {
		defer close(apiStopped)
		lg.Info("starting telegram api")
		api.Run()
		lg.Warn("telegram api stopped listening for updates")
	}()

	err = runUntilSignal(lg, func(ctx context.Context) error {
		lg.Info("starting bot")
		bt.Run(ctx)
		lg.Warn("bot stopped")
		return nil
	})

	lg.Info("stopping telegram api")
	api.Stop()
	for range api.Updates() {
	}
	<-apiStopped
	lg.Info("telegram api stopped")

	return err
}

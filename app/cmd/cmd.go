// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semior001/newspos/app/extractor"
	"github.com/Semior001/newspos/app/pos"
	"github.com/Semior001/newspos/app/service"
	"golang.org/x/sync/errgroup"
)

// FetchOpts defines how the article pages are requested.
type FetchOpts struct {
	Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"timeout for fetching the article page"`
	UserAgent string        `long:"user-agent" env:"USER_AGENT" description:"user agent sent to article sites"`
	LogBody   bool          `long:"log-body" env:"LOG_BODY" description:"log the beginning of fetched pages in debug mode"`
}

func (o FetchOpts) service(lg *slog.Logger) *service.Service {
	cl := extractor.NewHTTPClient(lg.With(slog.String("prefix", "http")), extractor.ClientOpts{
		UserAgent: o.UserAgent,
		Timeout:   o.Timeout,
		LogBody:   o.LogBody,
	})

	return service.NewService(
		lg.With(slog.String("prefix", "service")),
		extractor.New(lg.With(slog.String("prefix", "extractor")), cl),
		pos.NewAnalyzer(lg.With(slog.String("prefix", "pos")), pos.ProseTagger{}),
	)
}

// runUntilSignal runs the functions in a group until one of them fails
// or the process receives a termination signal.
func runUntilSignal(lg *slog.Logger, fns ...func(ctx context.Context) error) error {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case sig := <-sig:
			lg.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	for _, fn := range fns {
		fn := fn
		ewg.Go(func() error { return fn(ctx) })
	}

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
